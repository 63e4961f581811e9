package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	JobKindBooking = "booking"

	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
}

// Notification is the message handed to the external emitter for every
// committed booking change.
type Notification struct {
	BookingID   uuid.UUID `json:"booking_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Text        string    `json:"text"`
}

type Emitter interface {
	Emit(ctx context.Context, topic string, n Notification) error
}

// AvailabilityInvalidator drops cached advisory availability for a pair.
type AvailabilityInvalidator interface {
	InvalidatePair(itemID, locationID uuid.UUID)
}
