package bootstrap

import (
	"log/slog"

	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/logging"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *slog.Logger {
			return logging.New(cfg.Log)
		},
	),
)
