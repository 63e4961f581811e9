package components

import (
	"context"

	"rental-engine/internal/pkg/config"
	"rental-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) config.MessagingConfig { return cfg.Messaging },
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
		worker.NewNotificationDispatcher,
		worker.NewCompletionSweeper,
	),
	fx.Invoke(registerWorkers),
)

func registerWorkers(lc fx.Lifecycle, dispatcher *worker.NotificationDispatcher, sweeper *worker.CompletionSweeper) {
	// workers outlive the start hook's context
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			dispatcher.Start(ctx)
			sweeper.Start(ctx)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			if err := sweeper.Stop(stopCtx); err != nil {
				return err
			}
			return dispatcher.Stop(stopCtx)
		},
	})
}
