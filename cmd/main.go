package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-console/cmd/bootstrap"
	"hotel-console/internal/handler/console"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Best-effort: a missing .env just means the defaults apply.
	_ = godotenv.Load()
}

func runConsole(lc fx.Lifecycle, sd fx.Shutdowner, h *console.Handler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("hotel console started")
			go func() {
				if err := h.Run(context.Background()); err != nil {
					logger.Error("console loop failed", "error", err)
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("hotel console stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			runConsole,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start the application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop the application", "error", err)
	}
}
