// Package worker holds the background loops: outbox notification delivery
// and time-driven booking completion.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Runner drives a periodic task on its own goroutine until stopped.
type Runner struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context) error
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newRunner(name string, interval time.Duration, tick func(ctx context.Context) error, logger *slog.Logger) *Runner {
	return &Runner{name: name, interval: interval, tick: tick, logger: logger}
}

// Start returns immediately. The loop stops when Stop is called or ctx ends.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx)
	}()
}

func (r *Runner) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info(r.name+" started", slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info(r.name + " stopped")
			return
		case <-ticker.C:
			if err := r.tick(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error(r.name+" tick failed", slog.Any("error", err))
			}
		}
	}
}

func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
