package queries

import (
	"context"

	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	FindItem(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListItems(ctx context.Context, limit, offset int) ([]*ItemView, error)
	ListItemStocks(ctx context.Context, itemID uuid.UUID) ([]*StockView, error)
	FindLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListLocations(ctx context.Context) ([]*LocationView, error)
}

type CatalogQueries interface {
	GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListItems(ctx context.Context, cursor *Cursor, limit int) ([]*ItemView, *Cursor, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListLocations(ctx context.Context) ([]*LocationView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	item, err := q.readStore.FindItem(ctx, id)
	if err != nil {
		return nil, err
	}
	stock, err := q.readStore.ListItemStocks(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Stock = stock
	return item, nil
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context, cursor *Cursor, limit int) ([]*ItemView, *Cursor, error) {
	offset := 0
	if cursor != nil {
		var err error
		offset, err = DecodeOffsetCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.NewValidationError("cursor", err.Error())
		}
	}

	limit = ValidateLimit(limit, DefaultListLimit)
	rows, err := q.readStore.ListItems(ctx, limit+1, offset)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		next = &Cursor{After: EncodeOffsetCursor(offset + limit)}
	}
	return rows, next, nil
}

func (q *catalogQueriesImpl) GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	return q.readStore.FindLocation(ctx, id)
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.readStore.ListLocations(ctx)
}
