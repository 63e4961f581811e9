package mq

import (
	"context"
	"log/slog"

	"rental-engine/internal/usecase/shared"
)

// LogEmitter writes notifications to the log. It is used when no broker is
// configured.
type LogEmitter struct {
	logger *slog.Logger
}

var _ shared.Emitter = (*LogEmitter)(nil)

func NewLogEmitter(logger *slog.Logger) *LogEmitter {
	return &LogEmitter{logger: logger}
}

func (e *LogEmitter) Emit(ctx context.Context, topic string, n shared.Notification) error {
	e.logger.InfoContext(ctx, "notification",
		slog.String("topic", topic),
		slog.String("booking_id", n.BookingID.String()),
		slog.String("recipient_id", n.RecipientID.String()),
		slog.String("text", n.Text))
	return nil
}
