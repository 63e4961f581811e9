package readstore

import (
	"context"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/infra"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityViewQueries interface {
	GetLocationStock(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLocationStockParams) (sqlc.GetLocationStockRow, error)
	ListItemStocks(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.ListItemStocksRow, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
}

// AvailabilityReadStore reads stock and overlap counts outside any
// transaction. Counts may be stale by the time the caller sees them.
type AvailabilityReadStore struct {
	queries AvailabilityViewQueries
	catalog *CatalogReadStore
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(q *sqlc.Queries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: q,
		catalog: NewCatalogReadStore(q, db),
		db:      db,
	}
}

func (r *AvailabilityReadStore) FindStock(ctx context.Context, itemID, locationID uuid.UUID) (*queries.StockView, error) {
	row, err := r.queries.GetLocationStock(ctx, r.db, sqlc.GetLocationStockParams{
		ItemID:     itemID,
		LocationID: locationID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("location stock", itemID.String()+"@"+locationID.String())
		}
		return nil, infra.WrapRepoErr("failed to get location stock", err)
	}
	return &queries.StockView{
		ItemID:         row.ItemID,
		LocationID:     row.LocationID,
		LocationName:   row.LocationName,
		Quantity:       int(row.Quantity),
		DailyRateCents: row.DailyRateCents,
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *AvailabilityReadStore) ListItemStocks(ctx context.Context, itemID uuid.UUID) ([]*queries.StockView, error) {
	return r.catalog.ListItemStocks(ctx, itemID)
}

func (r *AvailabilityReadStore) CountOverlapping(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window) (int, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		ItemID:       itemID,
		LocationID:   locationID,
		WindowReturn: pgconv.TimeToPgtype(w.Return()),
		WindowPickup: pgconv.TimeToPgtype(w.Pickup()),
		ExcludeID:    uuid.Nil,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return int(n), nil
}
