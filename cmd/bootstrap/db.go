package bootstrap

import (
	"context"
	"log/slog"

	"rental-engine/internal/infra/db"
	"rental-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to postgres",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(cfg.DB.MaxConns)),
		slog.Duration("lock_timeout", cfg.DB.LockTimeout))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing postgres pool",
				slog.Int("acquired", int(stat.AcquiredConns())),
				slog.Int("idle", int(stat.IdleConns())))
			cleanup()
			return nil
		},
	})

	return pool, nil
}
