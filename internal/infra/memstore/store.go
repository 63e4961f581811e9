// Package memstore is the in-process storage backend. It implements the same
// unit-of-work and read-store ports as the Postgres backend, serializing
// allocation with per-key locks instead of row locks.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/pkg/keylock"
	"rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type pairKey struct {
	itemID     uuid.UUID
	locationID uuid.UUID
}

func (k pairKey) lockKey() string {
	return "stock:" + k.itemID.String() + ":" + k.locationID.String()
}

func itemLockKey(id uuid.UUID) string {
	return "item:" + id.String()
}

func bookingLockKey(id uuid.UUID) string {
	return "booking:" + id.String()
}

const notificationLockKey = "notification-jobs"

type Store struct {
	mu        sync.RWMutex
	items     map[uuid.UUID]catalog.Item
	locations map[uuid.UUID]catalog.Location
	stock     map[pairKey]catalog.LocationStock
	bookings  map[uuid.UUID]booking.Booking
	jobs      map[uuid.UUID]shared.NotificationJob
	jobSeq    []uuid.UUID

	locks *keylock.Locker
}

func NewStore() *Store {
	return &Store{
		items:     make(map[uuid.UUID]catalog.Item),
		locations: make(map[uuid.UUID]catalog.Location),
		stock:     make(map[pairKey]catalog.LocationStock),
		bookings:  make(map[uuid.UUID]booking.Booking),
		jobs:      make(map[uuid.UUID]shared.NotificationJob),
		locks:     keylock.New(),
	}
}

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

// Within applies writes eagerly and undoes them in reverse order when fn
// fails. Keys locked through the tx are held until fn returns.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store}
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

type memTx struct {
	store   *Store
	undo    []func()
	unlocks []func()
	held    map[string]struct{}
}

func (t *memTx) Bookings() shared.BookingRepository {
	return &bookingRepo{tx: t}
}

func (t *memTx) Catalog() shared.CatalogRepository {
	return &catalogRepo{tx: t}
}

func (t *memTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{tx: t}
}

// lock takes key for the rest of the transaction. Re-locking a held key is a
// no-op.
func (t *memTx) lock(ctx context.Context, key string) error {
	return t.take(ctx, key, t.store.locks.Lock)
}

// rlock takes key in shared mode. A key is never upgraded within one
// transaction.
func (t *memTx) rlock(ctx context.Context, key string) error {
	return t.take(ctx, key, t.store.locks.RLock)
}

func (t *memTx) take(ctx context.Context, key string, acquire func(context.Context, string) (func(), error)) error {
	if _, ok := t.held[key]; ok {
		return nil
	}
	unlock, err := acquire(ctx, key)
	if err != nil {
		return err
	}
	if t.held == nil {
		t.held = make(map[string]struct{})
	}
	t.held[key] = struct{}{}
	t.unlocks = append(t.unlocks, unlock)
	return nil
}

func (t *memTx) record(undo func()) {
	t.undo = append(t.undo, undo)
}

func (t *memTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	if len(t.undo) > 0 {
		slog.Debug("memstore transaction rolled back", slog.Int("writes", len(t.undo)))
	}
	t.undo = nil
}

func (t *memTx) releaseLocks() {
	for i := len(t.unlocks) - 1; i >= 0; i-- {
		t.unlocks[i]()
	}
	t.unlocks = nil
	t.held = nil
}
