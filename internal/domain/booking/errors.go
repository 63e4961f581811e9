package booking

import (
	"fmt"
	"time"

	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type CapacityExceededError struct {
	ItemID      uuid.UUID
	LocationID  uuid.UUID
	Window      Window
	Stock       int
	Overlapping int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("no units of item %s left at location %s for %s: stock %d, overlapping %d",
		e.ItemID, e.LocationID, e.Window, e.Stock, e.Overlapping)
}

func (e *CapacityExceededError) Is(target error) bool { return target == errs.ErrCapacityExceeded }

type CapacityConflictError struct {
	ItemID     uuid.UUID
	LocationID uuid.UUID
	Requested  int
	Peak       int
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("stock %d for item %s at location %s is below %d concurrently reserved units",
		e.Requested, e.ItemID, e.LocationID, e.Peak)
}

func (e *CapacityConflictError) Is(target error) bool { return target == errs.ErrCapacityConflict }

type TransitionError struct {
	BookingID uuid.UUID
	From      Status
	Action    string
	Reason    string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s booking %s in status %s", e.Action, e.BookingID, e.From)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Is(target error) bool { return target == errs.ErrInvalidTransition }

type DeadlinePassedError struct {
	BookingID uuid.UUID
	Deadline  time.Time
	At        time.Time
}

func (e *DeadlinePassedError) Error() string {
	return fmt.Sprintf("booking %s cancellation deadline %s passed at %s",
		e.BookingID, e.Deadline.Format(time.RFC3339), e.At.Format(time.RFC3339))
}

func (e *DeadlinePassedError) Is(target error) bool { return target == errs.ErrDeadlinePassed }

type InconsistencyError struct {
	ItemID      uuid.UUID
	LocationID  uuid.UUID
	Stock       int
	Overlapping int
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("item %s at location %s has %d active overlapping bookings against stock %d",
		e.ItemID, e.LocationID, e.Overlapping, e.Stock)
}

func (e *InconsistencyError) Is(target error) bool { return target == errs.ErrInternalInconsistency }
