package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/config"
	"rental-engine/internal/usecase/shared"
)

// NotificationDispatcher delivers queued outbox jobs through the emitter.
// Failed jobs are retried with exponential backoff until MaxAttempts.
type NotificationDispatcher struct {
	*Runner

	uow         shared.UnitOfWork
	emitter     shared.Emitter
	clock       clock.Clock
	batchSize   int
	maxAttempts int
	baseBackoff time.Duration
	logger      *slog.Logger
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	emitter shared.Emitter,
	clk clock.Clock,
	cfg config.MessagingConfig,
	logger *slog.Logger,
) *NotificationDispatcher {
	d := &NotificationDispatcher{
		uow:         uow,
		emitter:     emitter,
		clock:       clk,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.DispatchInterval,
		logger:      logger,
	}
	d.Runner = newRunner("notification dispatcher", cfg.DispatchInterval, func(ctx context.Context) error {
		_, err := d.DispatchOnce(ctx)
		return err
	}, logger)
	return d
}

// DispatchOnce claims one batch of due jobs and reports how many were sent.
func (d *NotificationDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, now, d.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := d.deliver(ctx, job); err != nil {
				giveUp := job.Attempts+1 >= d.maxAttempts
				retryAt := now.Add(d.backoff(job.Attempts))
				d.logger.WarnContext(ctx, "notification delivery failed",
					slog.String("job_id", job.ID.String()),
					slog.String("topic", job.Topic),
					slog.Int("attempt", job.Attempts+1),
					slog.Bool("give_up", giveUp),
					slog.Any("error", err))
				if err := tx.Notifications().MarkFailed(ctx, job.ID, err.Error(), retryAt, giveUp); err != nil {
					return err
				}
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, job.ID, now); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	var n shared.Notification
	if err := json.Unmarshal(job.Payload, &n); err != nil {
		return err
	}
	return d.emitter.Emit(ctx, job.Topic, n)
}

func (d *NotificationDispatcher) backoff(attempts int) time.Duration {
	if attempts > 10 {
		attempts = 10
	}
	return time.Duration(1<<attempts) * d.baseBackoff
}
