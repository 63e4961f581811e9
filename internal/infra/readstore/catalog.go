package readstore

import (
	"context"

	"rental-engine/internal/infra"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogViewQueries interface {
	GetItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	ListItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsParams) ([]sqlc.Items, error)
	ListItemStocks(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.ListItemStocksRow, error)
	GetLocation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error)
	ListLocations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Locations, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindItem(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetItem(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("item", id.String())
		}
		return nil, infra.WrapRepoErr("failed to get item", err)
	}
	return itemViewFromRow(row), nil
}

func (r *CatalogReadStore) ListItems(ctx context.Context, limit, offset int) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItems(ctx, r.db, sqlc.ListItemsParams{
		Limit:  pgconv.Count(limit),
		Offset: pgconv.Count(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}

	views := make([]*queries.ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, itemViewFromRow(row))
	}
	return views, nil
}

func (r *CatalogReadStore) ListItemStocks(ctx context.Context, itemID uuid.UUID) ([]*queries.StockView, error) {
	rows, err := r.queries.ListItemStocks(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item stock", err)
	}

	views := make([]*queries.StockView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.StockView{
			ItemID:         row.ItemID,
			LocationID:     row.LocationID,
			LocationName:   row.LocationName,
			Quantity:       int(row.Quantity),
			DailyRateCents: row.DailyRateCents,
			UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func (r *CatalogReadStore) FindLocation(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	row, err := r.queries.GetLocation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("location", id.String())
		}
		return nil, infra.WrapRepoErr("failed to get location", err)
	}
	return locationViewFromRow(row), nil
}

func (r *CatalogReadStore) ListLocations(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListLocations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}

	views := make([]*queries.LocationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, locationViewFromRow(row))
	}
	return views, nil
}

func itemViewFromRow(row sqlc.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:                    row.ID,
		Name:                  row.Name,
		Description:           pgconv.StringFromPgtype(row.Description),
		DefaultDailyRateCents: row.DefaultDailyRateCents,
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func locationViewFromRow(row sqlc.Locations) *queries.LocationView {
	return &queries.LocationView{
		ID:           row.ID,
		Name:         row.Name,
		Address:      row.Address,
		ContactInfo:  pgconv.StringFromPgtype(row.ContactInfo),
		WorkingHours: pgconv.StringFromPgtype(row.WorkingHours),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
