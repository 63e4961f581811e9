package booking

import (
	"fmt"
	"time"

	"rental-engine/internal/pkg/errs"
)

// Window is the half-open interval [pickup, return) an item is held for.
type Window struct {
	pickup time.Time
	ret    time.Time
}

// NewWindow truncates both ends to microseconds, the precision of timestamptz.
func NewWindow(pickup, ret time.Time) (Window, error) {
	if pickup.IsZero() || ret.IsZero() {
		return Window{}, errs.NewValidationError("window", "pickup and return are required")
	}
	pickup, ret = pickup.Truncate(time.Microsecond), ret.Truncate(time.Microsecond)
	if !pickup.Before(ret) {
		return Window{}, errs.NewValidationError("window", "pickup must be before return")
	}
	return Window{pickup: pickup.UTC(), ret: ret.UTC()}, nil
}

// ReconstructWindow rebuilds a persisted window without validation.
func ReconstructWindow(pickup, ret time.Time) Window {
	return Window{pickup: pickup.UTC(), ret: ret.UTC()}
}

func (w Window) Pickup() time.Time { return w.pickup }
func (w Window) Return() time.Time { return w.ret }

func (w Window) Duration() time.Duration {
	return w.ret.Sub(w.pickup)
}

func (w Window) Overlaps(o Window) bool {
	return w.pickup.Before(o.ret) && o.pickup.Before(w.ret)
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.pickup) && t.Before(w.ret)
}

func (w Window) ValidateFutureAt(now time.Time) error {
	if !w.pickup.After(now) {
		return errs.NewValidationError("pickup", "must be in the future")
	}
	if !w.ret.After(now) {
		return errs.NewValidationError("return", "must be in the future")
	}
	return nil
}

func (w Window) Equal(o Window) bool {
	return w.pickup.Equal(o.pickup) && w.ret.Equal(o.ret)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.pickup.Format(time.RFC3339), w.ret.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValidationError("amount", "money cannot be negative")
	}
	return Money{cents: cents}, nil
}

// ReconstructMoney rebuilds a persisted amount without validation.
func ReconstructMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}
