package bootstrap

import (
	"context"
	"log/slog"

	"rental-engine/internal/infra/mq"
	"rental-engine/internal/pkg/config"
	"rental-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEmitter,
	),
)

// NewEmitter publishes to the AMQP exchange when AMQP_URL is set and logs
// notifications otherwise.
func NewEmitter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Emitter, error) {
	if cfg.Messaging.AMQPURL == "" {
		logger.Info("AMQP_URL not set, notifications will be logged only")
		return mq.NewLogEmitter(logger), nil
	}

	pub, err := mq.NewPublisher(cfg.Messaging.AMQPURL, cfg.Messaging.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("publishing notifications", "exchange", cfg.Messaging.Exchange)
	return pub, nil
}
