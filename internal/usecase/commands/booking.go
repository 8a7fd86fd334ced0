package commands

import (
	"context"
	"log/slog"

	"hotel-console/internal/domain/booking"
	"hotel-console/internal/domain/client"
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/domain/service"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/queries"
)

// RoomStore is the write-side port onto the room inventory.
type RoomStore interface {
	Find(number string) (*room.Room, error)
	IsAvailable(number string) bool
	CheckIn(number string)
	CheckOut(number string)
	OccupancyRate() float64
}

// ClientLedger resolves guests by name; an empty name resolves to nil.
type ClientLedger interface {
	GetOrCreate(name string) (*client.Client, error)
}

type BookingInput struct {
	RoomNumber      string
	Nights          int
	ClientName      string
	ServiceCodes    []int
	DiscountPercent float64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input BookingInput) (*queries.BookingView, error)
	CreateGroupBooking(ctx context.Context, inputs []BookingInput) (*queries.GroupBookingView, error)
	CheckOut(ctx context.Context, roomNumber string) error
}

type bookingCommandsImpl struct {
	rooms   RoomStore
	ledger  ClientLedger
	factory *booking.Factory
	logger  *slog.Logger
}

func NewBookingCommands(
	rooms RoomStore,
	ledger ClientLedger,
	factory *booking.Factory,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		rooms:   rooms,
		ledger:  ledger,
		factory: factory,
		logger:  logger,
	}
}

// CreateBooking runs the individual flow: availability check, guest
// resolution, booking construction (loyalty accrual fires there), service
// selection, then check-in.
func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	input BookingInput,
) (*queries.BookingView, error) {
	b, err := c.buildBooking(ctx, input, nil)
	if err != nil {
		return nil, err
	}

	c.rooms.CheckIn(input.RoomNumber)
	view := queries.NewBookingView(b)
	b.Finalize()

	c.logger.Info("booking created",
		"room", input.RoomNumber,
		"nights", input.Nights,
		"total_cents", view.TotalCents,
	)
	return &view, nil
}

// CreateGroupBooking books every slot that is still available, skipping the
// rest. Rooms taken by an earlier slot count as unavailable even though
// check-in only happens after the group total is computed. Totals are
// summed before any room is checked in, so every slot is priced against the
// occupancy snapshot it was created with.
func (c *bookingCommandsImpl) CreateGroupBooking(
	ctx context.Context,
	inputs []BookingInput,
) (*queries.GroupBookingView, error) {
	taken := make(map[string]bool, len(inputs))
	bookings := make([]*booking.Booking, 0, len(inputs))
	view := &queries.GroupBookingView{}

	for _, input := range inputs {
		if taken[input.RoomNumber] || !c.rooms.IsAvailable(input.RoomNumber) {
			c.logger.Warn("group slot skipped, room unavailable", "room", input.RoomNumber)
			view.SkippedRooms = append(view.SkippedRooms, input.RoomNumber)
			continue
		}

		b, err := c.buildBooking(ctx, input, taken)
		if err != nil {
			return nil, err
		}
		taken[input.RoomNumber] = true
		bookings = append(bookings, b)
	}

	for _, b := range bookings {
		view.TotalCents += b.Total().Cents()
	}
	for _, b := range bookings {
		c.rooms.CheckIn(b.RoomNumber())
		view.Bookings = append(view.Bookings, queries.NewBookingView(b))
		b.Finalize()
	}

	c.logger.Info("group booking created",
		"slots", len(view.Bookings),
		"skipped", len(view.SkippedRooms),
		"total_cents", view.TotalCents,
	)
	return view, nil
}

// CheckOut releases an occupied room.
func (c *bookingCommandsImpl) CheckOut(_ context.Context, roomNumber string) error {
	if _, err := c.rooms.Find(roomNumber); err != nil {
		return err
	}
	if c.rooms.IsAvailable(roomNumber) {
		return errs.Mark(errs.New("check out of a vacant room"), errs.ErrRoomNotOccupied)
	}

	c.rooms.CheckOut(roomNumber)
	c.logger.Info("room released", "room", roomNumber)
	return nil
}

// buildBooking is the shared construction path. taken is non-nil only in
// the group flow, where rooms claimed by earlier slots are not yet checked
// in.
func (c *bookingCommandsImpl) buildBooking(
	_ context.Context,
	input BookingInput,
	taken map[string]bool,
) (*booking.Booking, error) {
	rm, err := c.rooms.Find(input.RoomNumber)
	if err != nil {
		return nil, err
	}
	if taken[input.RoomNumber] || !c.rooms.IsAvailable(input.RoomNumber) {
		return nil, errs.Mark(errs.New("room is occupied"), errs.ErrRoomOccupied)
	}

	guest, err := c.ledger.GetOrCreate(input.ClientName)
	if err != nil {
		return nil, errs.Wrap(err, "resolve client")
	}

	b, err := c.factory.CreateBooking(rm, input.Nights, c.rooms.OccupancyRate(), guest)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	for _, code := range input.ServiceCodes {
		kind, err := service.KindFromCode(code)
		if err != nil {
			c.logger.Warn("service code skipped", "code", code)
			continue
		}
		if err := b.AddService(kind); err != nil {
			c.logger.Warn("service skipped", "kind", kind.String(), "error", err)
		}
	}

	if input.DiscountPercent != 0 {
		d, err := pricing.NewDiscountPercent(input.DiscountPercent)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := b.ApplyDiscount(d); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	return b, nil
}
