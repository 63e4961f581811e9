package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/usecase/shared"

	"github.com/dustin/go-humanize"
)

const (
	TopicBookingCreated   = "booking.created"
	TopicBookingUpdated   = "booking.updated"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
	TopicBookingCompleted = "booking.completed"
)

// enqueueNotification writes the renter's notification to the outbox inside
// tx, so it is delivered only if the booking change commits.
func enqueueNotification(ctx context.Context, tx shared.Tx, now time.Time, topic string, b *booking.Booking) error {
	n := shared.Notification{
		BookingID:   b.ID(),
		RecipientID: b.RenterID(),
		Text:        notificationText(topic, b, now),
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}
	return tx.Notifications().CreateJob(ctx, shared.JobKindBooking, topic, payload, now)
}

func notificationText(topic string, b *booking.Booking, now time.Time) string {
	w := b.Window()
	span := strings.TrimSpace(humanize.RelTime(w.Pickup(), w.Return(), "", ""))
	pickup := w.Pickup().Format("Mon 2 Jan 2006 15:04 MST")

	switch topic {
	case TopicBookingCreated:
		return fmt.Sprintf("Your booking %s is reserved: pickup %s (%s), %s, total %s. Free cancellation until %s.",
			shortID(b), pickup, humanize.RelTime(w.Pickup(), now, "ago", "from now"), span,
			formatCents(b.Total().Cents()), b.CancellationDeadline().Format(time.RFC3339))
	case TopicBookingUpdated:
		return fmt.Sprintf("Your booking %s was changed: pickup %s, %s, total %s.",
			shortID(b), pickup, span, formatCents(b.Total().Cents()))
	case TopicBookingConfirmed:
		return fmt.Sprintf("Your booking %s is confirmed for pickup %s.", shortID(b), pickup)
	case TopicBookingCancelled:
		return fmt.Sprintf("Your booking %s for pickup %s was cancelled.", shortID(b), pickup)
	case TopicBookingCompleted:
		return fmt.Sprintf("Your booking %s is complete. Thank you for returning the equipment.", shortID(b))
	default:
		return fmt.Sprintf("Your booking %s is now %s.", shortID(b), b.Status())
	}
}

func shortID(b *booking.Booking) string {
	return b.ID().String()[:8]
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%s.%02d", humanize.Comma(cents/100), cents%100)
}
