package worker

import (
	"context"
	"log/slog"

	"rental-engine/internal/pkg/config"
	"rental-engine/internal/usecase/commands"
)

// CompletionSweeper is the time-driven trigger for confirmed to completed.
type CompletionSweeper struct {
	*Runner

	bookings  commands.BookingCommands
	batchSize int
	logger    *slog.Logger
}

func NewCompletionSweeper(bookings commands.BookingCommands, cfg config.SchedulerConfig, logger *slog.Logger) *CompletionSweeper {
	s := &CompletionSweeper{
		bookings:  bookings,
		batchSize: cfg.CompletionBatchSize,
		logger:    logger,
	}
	s.Runner = newRunner("completion sweeper", cfg.CompletionSweepInterval, s.SweepOnce, logger)
	return s
}

func (s *CompletionSweeper) SweepOnce(ctx context.Context) error {
	n, err := s.bookings.CompleteElapsed(ctx, s.batchSize)
	if n > 0 {
		s.logger.InfoContext(ctx, "bookings completed", slog.Int("count", n))
	}
	return err
}
