package queries

import (
	"hotel-console/internal/domain/booking"
	"hotel-console/internal/domain/room"

	"github.com/jinzhu/copier"
)

// NewRoomView flattens a room entity for display.
func NewRoomView(r *room.Room) RoomView {
	return RoomView{
		Number:    r.Number(),
		Class:     r.Class().String(),
		RateCents: r.NightlyRate().Cents(),
	}
}

func NewRoomViews(rooms []*room.Room) []RoomView {
	views := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, NewRoomView(r))
	}
	return views
}

// NewBookingView projects a booking for display. copier fills the fields
// whose getters line up by name; the money and guest fields need explicit
// handling.
func NewBookingView(b *booking.Booking) BookingView {
	var view BookingView
	_ = copier.Copy(&view, b)

	view.RoomClass = b.RoomClass().String()
	view.ServiceCostCents = b.ServiceCost().Cents()
	view.TotalCents = b.Total().Cents()

	if guest := b.Guest(); guest != nil {
		name := guest.Name()
		points := guest.Points()
		view.ClientName = &name
		view.ClientPoints = &points
	}
	return view
}
