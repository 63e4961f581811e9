package queries

import (
	"context"
	"log/slog"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/pkg/obs"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
)

type AvailabilityReadStore interface {
	// FindStock returns NotFound when the location does not carry the item.
	FindStock(ctx context.Context, itemID, locationID uuid.UUID) (*StockView, error)
	ListItemStocks(ctx context.Context, itemID uuid.UUID) ([]*StockView, error)
	CountOverlapping(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window) (int, error)
}

// AvailabilityQueries answers advisory availability. Results take no lock,
// may be served from a short-lived cache and are never the basis of an
// allocation decision.
type AvailabilityQueries interface {
	Available(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window) (*AvailabilityView, error)
	AvailableByItem(ctx context.Context, itemID uuid.UUID, w booking.Window) ([]*AvailabilityView, error)
	InvalidatePair(itemID, locationID uuid.UUID)
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type availabilityKey struct {
	itemID     uuid.UUID
	locationID uuid.UUID
	pickup     int64
	ret        int64
}

type availabilityQueriesImpl struct {
	store   AvailabilityReadStore
	catalog CatalogReadStore
	cache   *expirable.LRU[availabilityKey, AvailabilityView]
	logger  *slog.Logger
}

func NewAvailabilityQueries(store AvailabilityReadStore, catalog CatalogReadStore, cacheCfg CacheConfig, logger *slog.Logger) AvailabilityQueries {
	q := &availabilityQueriesImpl{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
	if cacheCfg.TTL > 0 && cacheCfg.Size > 0 {
		q.cache = expirable.NewLRU[availabilityKey, AvailabilityView](cacheCfg.Size, nil, cacheCfg.TTL)
	}
	return q
}

func (q *availabilityQueriesImpl) Available(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window) (view *AvailabilityView, err error) {
	ctx, span := obs.Start(ctx, "availability.advisory",
		attribute.String("item_id", itemID.String()),
		attribute.String("location_id", locationID.String()))
	defer func() { obs.End(span, err) }()

	key := newAvailabilityKey(itemID, locationID, w)
	if cached, ok := q.cached(key); ok {
		return cached, nil
	}

	stock, err := q.store.FindStock(ctx, itemID, locationID)
	if err != nil {
		return nil, err
	}
	return q.computeAndCache(ctx, key, stock, w)
}

func (q *availabilityQueriesImpl) AvailableByItem(ctx context.Context, itemID uuid.UUID, w booking.Window) ([]*AvailabilityView, error) {
	if _, err := q.catalog.FindItem(ctx, itemID); err != nil {
		return nil, err
	}

	stocks, err := q.store.ListItemStocks(ctx, itemID)
	if err != nil {
		return nil, err
	}

	views := make([]*AvailabilityView, 0, len(stocks))
	for _, s := range stocks {
		key := newAvailabilityKey(itemID, s.LocationID, w)
		if cached, ok := q.cached(key); ok {
			views = append(views, cached)
			continue
		}
		v, err := q.computeAndCache(ctx, key, s, w)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func newAvailabilityKey(itemID, locationID uuid.UUID, w booking.Window) availabilityKey {
	return availabilityKey{
		itemID:     itemID,
		locationID: locationID,
		pickup:     w.Pickup().UnixNano(),
		ret:        w.Return().UnixNano(),
	}
}

func (q *availabilityQueriesImpl) cached(key availabilityKey) (*AvailabilityView, bool) {
	if q.cache == nil {
		return nil, false
	}
	v, ok := q.cache.Get(key)
	if !ok {
		return nil, false
	}
	return &v, true
}

func (q *availabilityQueriesImpl) computeAndCache(ctx context.Context, key availabilityKey, stock *StockView, w booking.Window) (*AvailabilityView, error) {
	view, err := q.compute(ctx, stock, w)
	if err != nil {
		return nil, err
	}
	if q.cache != nil {
		q.cache.Add(key, *view)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) compute(ctx context.Context, stock *StockView, w booking.Window) (*AvailabilityView, error) {
	overlapping, err := q.store.CountOverlapping(ctx, stock.ItemID, stock.LocationID, w)
	if err != nil {
		return nil, err
	}

	available, inconsistency := booking.Availability(stock.ItemID, stock.LocationID, stock.Quantity, overlapping)
	if inconsistency != nil {
		q.logger.ErrorContext(ctx, "availability invariant violated",
			slog.String("item_id", stock.ItemID.String()),
			slog.String("location_id", stock.LocationID.String()),
			slog.Int("stock", stock.Quantity),
			slog.Int("overlapping", overlapping),
			slog.String("window", w.String()))
	}

	return &AvailabilityView{
		ItemID:       stock.ItemID,
		LocationID:   stock.LocationID,
		LocationName: stock.LocationName,
		PickupAt:     w.Pickup(),
		ReturnAt:     w.Return(),
		Stock:        stock.Quantity,
		Available:    available,
	}, nil
}

// InvalidatePair drops every cached window of the pair. Commands call it
// after commit.
func (q *availabilityQueriesImpl) InvalidatePair(itemID, locationID uuid.UUID) {
	if q.cache == nil {
		return
	}
	for _, k := range q.cache.Keys() {
		if k.itemID == itemID && k.locationID == locationID {
			q.cache.Remove(k)
		}
	}
}
