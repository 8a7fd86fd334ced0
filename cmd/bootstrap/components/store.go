package components

import (
	"hotel-console/internal/infra/memstore"
	"hotel-console/internal/usecase/commands"
	"hotel-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			newRoomStore,
			fx.As(new(commands.RoomStore)),
			fx.As(new(queries.RoomReader)),
		),
		fx.Annotate(
			memstore.NewClientLedger,
			fx.As(new(commands.ClientLedger)),
		),
	),
)

func newRoomStore() (*memstore.RoomStore, error) {
	rooms, err := seedRooms()
	if err != nil {
		return nil, err
	}
	return memstore.NewRoomStore(rooms), nil
}
