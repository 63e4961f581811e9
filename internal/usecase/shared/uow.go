package shared

import (
	"context"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Catalog() CatalogRepository
	Notifications() NotificationRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	// FindForUpdate loads a booking and holds it until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// CountOverlapping counts active bookings of the pair intersecting w,
	// ignoring exclude (uuid.Nil excludes nothing).
	CountOverlapping(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window, exclude uuid.UUID) (int, error)
	ActiveWindowsEndingAfter(ctx context.Context, itemID, locationID uuid.UUID, t time.Time) ([]booking.Window, error)
	CountActiveByItem(ctx context.Context, itemID uuid.UUID) (int, error)
	ListElapsedConfirmed(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type CatalogRepository interface {
	CreateItem(ctx context.Context, it *catalog.Item) error
	UpdateItem(ctx context.Context, it *catalog.Item) error
	// DeleteItem removes the item together with its stock rows.
	DeleteItem(ctx context.Context, id uuid.UUID) error
	FindItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error)
	// LockItem holds the item exclusively until the transaction ends.
	LockItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error)
	// ShareItem keeps the item from being deleted until the transaction ends.
	// Any number of transactions may share an item at once.
	ShareItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error)

	CreateLocation(ctx context.Context, l *catalog.Location) error
	UpdateLocation(ctx context.Context, l *catalog.Location) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error
	FindLocation(ctx context.Context, id uuid.UUID) (*catalog.Location, error)
	CountStockAtLocation(ctx context.Context, locationID uuid.UUID) (int, error)

	// LockStock serializes allocation for one (item, location) pair until the
	// transaction ends.
	LockStock(ctx context.Context, itemID, locationID uuid.UUID) (*catalog.LocationStock, error)
	// LockItemStocks locks every stock row of the item in location order.
	LockItemStocks(ctx context.Context, itemID uuid.UUID) ([]*catalog.LocationStock, error)
	SaveStock(ctx context.Context, s *catalog.LocationStock) error
	DeleteStock(ctx context.Context, itemID, locationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue returns queued jobs due at now, locked against other dispatchers.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, retryAt time.Time, giveUp bool) error
}
