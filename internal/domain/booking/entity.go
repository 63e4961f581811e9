package booking

import (
	"time"

	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type Policy struct {
	CancellationGrace time.Duration
}

func (p Policy) DeadlineFor(w Window) time.Time {
	return w.Pickup().Add(-p.CancellationGrace)
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Policy          Policy
}

// Terms are the renter-chosen parts of a booking that update may change
// while it is still pending.
type Terms struct {
	ItemID     uuid.UUID
	LocationID uuid.UUID
	Window     Window
	Rate       Money
}

func (t Terms) SamePair(o Terms) bool {
	return t.ItemID == o.ItemID && t.LocationID == o.LocationID
}

type Booking struct {
	id        uuid.UUID
	renterID  uuid.UUID
	terms     Terms
	status    Status
	total     Money
	deadline  time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(services *Services, renterID uuid.UUID, terms Terms) (*Booking, error) {
	if renterID == uuid.Nil {
		return nil, errs.NewValidationError("renter_id", "is required")
	}
	if err := validateTerms(terms, services.Clock.Now()); err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:        uuid.New(),
		renterID:  renterID,
		terms:     terms,
		status:    StatusPending,
		total:     services.PriceCalculator.Total(terms.Rate, terms.Window),
		deadline:  services.Policy.DeadlineFor(terms.Window),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, renterID uuid.UUID,
	terms Terms,
	status Status,
	total Money,
	deadline time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		renterID:  renterID,
		terms:     terms,
		status:    status,
		total:     total,
		deadline:  deadline.UTC(),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func validateTerms(t Terms, now time.Time) error {
	if t.ItemID == uuid.Nil {
		return errs.NewValidationError("item_id", "is required")
	}
	if t.LocationID == uuid.Nil {
		return errs.NewValidationError("location_id", "is required")
	}
	if t.Rate.Cents() < 0 {
		return errs.NewValidationError("rate", "cannot be negative")
	}
	return t.Window.ValidateFutureAt(now)
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return b.transitionErr("confirm", "")
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel is refused at or after the cancellation deadline regardless of
// whether the booking was confirmed.
func (b *Booking) Cancel(now time.Time) error {
	if !b.status.IsActive() {
		return b.transitionErr("cancel", "")
	}
	if !now.Before(b.deadline) {
		return &DeadlinePassedError{BookingID: b.id, Deadline: b.deadline, At: now}
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return b.transitionErr("complete", "")
	}
	if now.Before(b.terms.Window.Return()) {
		return b.transitionErr("complete", "return has not elapsed")
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

// Amend replaces the terms of a pending booking, recomputing its total and
// cancellation deadline.
func (b *Booking) Amend(services *Services, terms Terms) error {
	if b.status != StatusPending {
		return b.transitionErr("update", "only pending bookings can be changed")
	}
	now := services.Clock.Now()
	if err := validateTerms(terms, now); err != nil {
		return err
	}
	b.terms = terms
	b.total = services.PriceCalculator.Total(terms.Rate, terms.Window)
	b.deadline = services.Policy.DeadlineFor(terms.Window)
	b.updatedAt = now
	return nil
}

func (b *Booking) transitionErr(action, reason string) error {
	return &TransitionError{BookingID: b.id, From: b.status, Action: action, Reason: reason}
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.renterID == userID
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) RenterID() uuid.UUID             { return b.renterID }
func (b *Booking) Terms() Terms                    { return b.terms }
func (b *Booking) ItemID() uuid.UUID               { return b.terms.ItemID }
func (b *Booking) LocationID() uuid.UUID           { return b.terms.LocationID }
func (b *Booking) Window() Window                  { return b.terms.Window }
func (b *Booking) Rate() Money                     { return b.terms.Rate }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) Total() Money                    { return b.total }
func (b *Booking) CancellationDeadline() time.Time { return b.deadline }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }
