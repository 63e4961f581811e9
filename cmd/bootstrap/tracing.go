package bootstrap

import (
	"context"
	"log/slog"

	"rental-engine/internal/pkg/config"
	"rental-engine/internal/pkg/obs"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(RegisterTracer),
)

func RegisterTracer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s, err := obs.InitTracer(ctx, cfg.Tracing)
			if err != nil {
				return err
			}
			shutdown = s
			if cfg.Tracing.Enabled {
				logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
