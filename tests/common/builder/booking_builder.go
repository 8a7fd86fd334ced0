package builder

import (
	"time"

	"hotel-console/internal/domain/booking"
	"hotel-console/internal/domain/client"
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/domain/service"
	"hotel-console/internal/pkg/clock"
)

// BookingBuilder assembles a domain booking through the real factory with
// test defaults: room 101, Single, 1000/night, 2 nights, empty hotel,
// anonymous guest.
type BookingBuilder struct {
	roomNumber       string
	roomClass        room.Class
	rateUnits        int64
	nights           int
	occupancyPercent float64
	guest            *client.Client
	now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		roomNumber:       "101",
		roomClass:        room.ClassSingle,
		rateUnits:        1000,
		nights:           2,
		occupancyPercent: 0,
		now:              time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) WithRoom(number string, class room.Class, rateUnits int64) *BookingBuilder {
	b.roomNumber = number
	b.roomClass = class
	b.rateUnits = rateUnits
	return b
}

func (b *BookingBuilder) WithNights(nights int) *BookingBuilder {
	b.nights = nights
	return b
}

func (b *BookingBuilder) WithOccupancy(percent float64) *BookingBuilder {
	b.occupancyPercent = percent
	return b
}

func (b *BookingBuilder) WithGuest(guest *client.Client) *BookingBuilder {
	b.guest = guest
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	rm, err := room.NewRoom(b.roomNumber, b.roomClass, pricing.FromUnits(b.rateUnits))
	if err != nil {
		return nil, err
	}

	factory := booking.NewFactory(
		clock.NewMockClock(b.now),
		pricing.NewBandedOccupancyPricer(),
		service.NewCatalog(),
	)
	return factory.CreateBooking(rm, b.nights, b.occupancyPercent, b.guest)
}
