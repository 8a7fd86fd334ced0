package booking

import (
	"errors"
	"time"

	"hotel-console/internal/domain/client"
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/domain/service"

	"github.com/google/uuid"
)

var (
	ErrInvalidNights    = errors.New("nights must be positive")
	ErrBookingFinalized = errors.New("booking is already finalized")
)

// Booking snapshots the base rate and the occupancy percentage at creation
// time; later inventory changes never reprice it. The guest handle is owned
// by the ledger, not the booking, and its loyalty tier is read live so a
// guest who books several rooms in one group run pays every slot at the
// tier reached after all accruals.
type Booking struct {
	id                uuid.UUID
	roomNumber        string
	roomClass         room.Class
	nights            int
	baseRate          pricing.Money
	occupancySnapshot float64
	serviceCost       pricing.Money
	manualDiscount    pricing.DiscountPercent
	guest             *client.Client
	status            Status
	createdAt         time.Time

	pricer  pricing.OccupancyPricer
	catalog *service.Catalog
}

// AddService prices the kind through the catalog and adds it to the running
// service cost. Repeat selections accumulate. An unknown kind leaves the
// cost unchanged and is reported to the caller.
func (b *Booking) AddService(kind service.Kind) error {
	if b.status == StatusFinalized {
		return ErrBookingFinalized
	}

	price, err := b.catalog.Price(kind)
	if err != nil {
		return err
	}

	b.serviceCost = b.serviceCost.Add(price)
	return nil
}

// ApplyDiscount overwrites the manual discount; it does not accumulate.
func (b *Booking) ApplyDiscount(percent pricing.DiscountPercent) error {
	if b.status == StatusFinalized {
		return ErrBookingFinalized
	}

	b.manualDiscount = percent
	return nil
}

// Finalize freezes the booking. Called once the room is checked in.
func (b *Booking) Finalize() {
	b.status = StatusFinalized
}

// Total is a pure function of the current state and may be called
// repeatedly. Ordering matters: occupancy surcharge and services first,
// manual discount next, guest tier discount last, each multiplicative.
func (b *Booking) Total() pricing.Money {
	nightly := b.pricer.NightlyRate(b.baseRate, b.occupancySnapshot)
	subtotal := nightly.MulInt(b.nights).Add(b.serviceCost)

	total := subtotal.ApplyPercentOff(b.manualDiscount)
	if b.guest != nil {
		total = total.ApplyPercentOff(b.guest.DiscountPercent())
	}
	return total
}

func (b *Booking) ID() uuid.UUID                           { return b.id }
func (b *Booking) RoomNumber() string                      { return b.roomNumber }
func (b *Booking) RoomClass() room.Class                   { return b.roomClass }
func (b *Booking) Nights() int                             { return b.nights }
func (b *Booking) BaseRate() pricing.Money                 { return b.baseRate }
func (b *Booking) OccupancySnapshot() float64              { return b.occupancySnapshot }
func (b *Booking) ServiceCost() pricing.Money              { return b.serviceCost }
func (b *Booking) ManualDiscount() pricing.DiscountPercent { return b.manualDiscount }
func (b *Booking) Guest() *client.Client                   { return b.guest }
func (b *Booking) Status() Status                          { return b.status }
func (b *Booking) CreatedAt() time.Time                    { return b.createdAt }
