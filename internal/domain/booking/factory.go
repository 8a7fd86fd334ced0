package booking

import (
	"hotel-console/internal/domain/client"
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/domain/service"
	"hotel-console/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock   clock.Clock
	Pricer  pricing.OccupancyPricer
	Catalog *service.Catalog
}

func NewFactory(clk clock.Clock, pricer pricing.OccupancyPricer, catalog *service.Catalog) *Factory {
	return &Factory{
		Clock:   clk,
		Pricer:  pricer,
		Catalog: catalog,
	}
}

// CreateBooking snapshots the room's rate and the given occupancy
// percentage. If a guest is present, their loyalty points accrue here, at
// construction time, on room spend only.
func (f *Factory) CreateBooking(
	rm *room.Room,
	nights int,
	occupancyPercent float64,
	guest *client.Client,
) (*Booking, error) {
	if nights < 1 {
		return nil, ErrInvalidNights
	}

	baseRate := rm.NightlyRate()
	if guest != nil {
		guest.AccruePoints(baseRate.MulInt(nights))
	}

	return &Booking{
		id:                uuid.New(),
		roomNumber:        rm.Number(),
		roomClass:         rm.Class(),
		nights:            nights,
		baseRate:          baseRate,
		occupancySnapshot: occupancyPercent,
		guest:             guest,
		status:            StatusOpen,
		createdAt:         f.Clock.Now(),
		pricer:            f.Pricer,
		catalog:           f.Catalog,
	}, nil
}
