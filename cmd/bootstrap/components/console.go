package components

import (
	"log/slog"
	"os"

	"hotel-console/internal/handler/console"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/usecase/commands"
	"hotel-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		func(
			cmds commands.BookingCommands,
			qrs queries.RoomQueries,
			cfg config.Config,
			logger *slog.Logger,
		) *console.Handler {
			return console.NewHandler(os.Stdin, os.Stdout, cmds, qrs, cfg, logger)
		},
	),
)
