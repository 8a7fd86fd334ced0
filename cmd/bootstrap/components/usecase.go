package components

import (
	"hotel-console/internal/domain/booking"
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/service"
	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/usecase/commands"
	"hotel-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	service.NewCatalog,
	fx.Annotate(
		pricing.NewBandedOccupancyPricer,
		fx.As(new(pricing.OccupancyPricer)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
	),
)
