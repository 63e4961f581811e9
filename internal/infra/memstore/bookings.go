package memstore

import (
	"context"
	"sort"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type bookingRepo struct {
	tx *memTx
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID()]; ok {
		return errs.NewConflictError("booking", b.ID().String(), "already exists")
	}
	s.bookings[b.ID()] = *b
	id := b.ID()
	r.tx.record(func() { delete(s.bookings, id) })
	return nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.bookings[b.ID()]
	if !ok {
		return errs.NewNotFoundError("booking", b.ID().String())
	}
	s.bookings[b.ID()] = *b
	r.tx.record(func() { s.bookings[prev.ID()] = prev })
	return nil
}

func (r *bookingRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := r.tx.lock(ctx, bookingLockKey(id)); err != nil {
		return nil, err
	}

	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, errs.NewNotFoundError("booking", id.String())
	}
	return &b, nil
}

func (r *bookingRepo) CountOverlapping(_ context.Context, itemID, locationID uuid.UUID, w booking.Window, exclude uuid.UUID) (int, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countOverlapping(itemID, locationID, w, exclude), nil
}

func (r *bookingRepo) ActiveWindowsEndingAfter(_ context.Context, itemID, locationID uuid.UUID, t time.Time) ([]booking.Window, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var windows []booking.Window
	for _, b := range s.bookings {
		if b.ItemID() != itemID || b.LocationID() != locationID || !b.IsActive() {
			continue
		}
		if b.Window().Return().After(t) {
			windows = append(windows, b.Window())
		}
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Pickup().Before(windows[j].Pickup())
	})
	return windows, nil
}

func (r *bookingRepo) CountActiveByItem(_ context.Context, itemID uuid.UUID) (int, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, b := range s.bookings {
		if b.ItemID() == itemID && b.IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *bookingRepo) ListElapsedConfirmed(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var elapsed []booking.Booking
	for _, b := range s.bookings {
		if b.Status() == booking.StatusConfirmed && !b.Window().Return().After(now) {
			elapsed = append(elapsed, b)
		}
	}
	sort.Slice(elapsed, func(i, j int) bool {
		return elapsed[i].Window().Return().Before(elapsed[j].Window().Return())
	})

	if limit > 0 && len(elapsed) > limit {
		elapsed = elapsed[:limit]
	}
	ids := make([]uuid.UUID, 0, len(elapsed))
	for i := range elapsed {
		ids = append(ids, elapsed[i].ID())
	}
	return ids, nil
}

// countOverlapping requires s.mu to be held.
func (s *Store) countOverlapping(itemID, locationID uuid.UUID, w booking.Window, exclude uuid.UUID) int {
	n := 0
	for _, b := range s.bookings {
		if b.ID() == exclude || b.ItemID() != itemID || b.LocationID() != locationID {
			continue
		}
		if b.IsActive() && b.Window().Overlaps(w) {
			n++
		}
	}
	return n
}
