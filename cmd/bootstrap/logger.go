package bootstrap

import (
	"log/slog"

	"rental-engine/internal/handler/middleware"
	"rental-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

const serviceName = "rental-engine"

// NewLogger returns the process logger tagged with the service name and the
// storage backend.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger().With(
		slog.String("service", serviceName),
		slog.String("storage", cfg.Booking.Storage),
	)
	slog.SetDefault(logger)
	return logger
}
