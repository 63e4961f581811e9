package repository

import (
	"context"

	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/infra"
	"rental-engine/internal/infra/repository/converter"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) error
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
	DeleteItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	LockItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	KeyShareItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)

	CreateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLocationParams) error
	UpdateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLocationParams) (int64, error)
	DeleteLocation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetLocation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error)
	CountStockAtLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) (int64, error)

	LockLocationStock(ctx context.Context, db sqlc.DBTX, arg sqlc.LockLocationStockParams) (sqlc.LocationStock, error)
	LockItemStocks(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.LocationStock, error)
	UpsertLocationStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertLocationStockParams) error
	DeleteLocationStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteLocationStockParams) (int64, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) CreateItem(ctx context.Context, it *catalog.Item) error {
	err := r.queries.CreateItem(ctx, r.db, sqlc.CreateItemParams{
		ID:                    it.ID(),
		Name:                  it.Name(),
		Description:           converter.OptionalText(it.Description()),
		DefaultDailyRateCents: it.DefaultDailyRateCents(),
		CreatedAt:             pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(it.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateItem(ctx context.Context, it *catalog.Item) error {
	n, err := r.queries.UpdateItem(ctx, r.db, sqlc.UpdateItemParams{
		ID:                    it.ID(),
		Name:                  it.Name(),
		Description:           converter.OptionalText(it.Description()),
		DefaultDailyRateCents: it.DefaultDailyRateCents(),
		UpdatedAt:             pgconv.TimeToPgtype(it.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if n == 0 {
		return errs.NewNotFoundError("item", it.ID().String())
	}
	return nil
}

// DeleteItem relies on ON DELETE CASCADE to drop the item's stock rows.
func (r *CatalogRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteItem(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if n == 0 {
		return errs.NewNotFoundError("item", id.String())
	}
	return nil
}

func (r *CatalogRepository) FindItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	row, err := r.queries.GetItem(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("item", id.String())
		}
		return nil, infra.WrapRepoErr("failed to load item", err)
	}
	return converter.ItemFromRow(row), nil
}

// LockItem takes FOR UPDATE on the item row, which waits out every ShareItem.
func (r *CatalogRepository) LockItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	return r.itemRow(ctx, id, r.queries.LockItem, "failed to lock item")
}

// ShareItem takes FOR KEY SHARE on the item row. It blocks deletes but not
// renames.
func (r *CatalogRepository) ShareItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	return r.itemRow(ctx, id, r.queries.KeyShareItem, "failed to share-lock item")
}

func (r *CatalogRepository) itemRow(
	ctx context.Context,
	id uuid.UUID,
	query func(context.Context, sqlc.DBTX, uuid.UUID) (sqlc.Items, error),
	msg string,
) (*catalog.Item, error) {
	row, err := query(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("item", id.String())
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return converter.ItemFromRow(row), nil
}

func (r *CatalogRepository) CreateLocation(ctx context.Context, l *catalog.Location) error {
	err := r.queries.CreateLocation(ctx, r.db, sqlc.CreateLocationParams{
		ID:           l.ID(),
		Name:         l.Name(),
		Address:      l.Address(),
		ContactInfo:  converter.OptionalText(l.ContactInfo()),
		WorkingHours: converter.OptionalText(l.WorkingHours()),
		CreatedAt:    pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(l.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create location", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateLocation(ctx context.Context, l *catalog.Location) error {
	n, err := r.queries.UpdateLocation(ctx, r.db, sqlc.UpdateLocationParams{
		ID:           l.ID(),
		Name:         l.Name(),
		Address:      l.Address(),
		ContactInfo:  converter.OptionalText(l.ContactInfo()),
		WorkingHours: converter.OptionalText(l.WorkingHours()),
		UpdatedAt:    pgconv.TimeToPgtype(l.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update location", err)
	}
	if n == 0 {
		return errs.NewNotFoundError("location", l.ID().String())
	}
	return nil
}

func (r *CatalogRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteLocation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete location", err)
	}
	if n == 0 {
		return errs.NewNotFoundError("location", id.String())
	}
	return nil
}

func (r *CatalogRepository) FindLocation(ctx context.Context, id uuid.UUID) (*catalog.Location, error) {
	row, err := r.queries.GetLocation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("location", id.String())
		}
		return nil, infra.WrapRepoErr("failed to load location", err)
	}
	return converter.LocationFromRow(row), nil
}

func (r *CatalogRepository) CountStockAtLocation(ctx context.Context, locationID uuid.UUID) (int, error) {
	n, err := r.queries.CountStockAtLocation(ctx, r.db, locationID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count stock at location", err)
	}
	return int(n), nil
}

// LockStock takes a row lock on the stock row. A pair without a row is not
// carried and yields NotFound.
func (r *CatalogRepository) LockStock(ctx context.Context, itemID, locationID uuid.UUID) (*catalog.LocationStock, error) {
	row, err := r.queries.LockLocationStock(ctx, r.db, sqlc.LockLocationStockParams{
		ItemID:     itemID,
		LocationID: locationID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("location stock", itemID.String()+"@"+locationID.String())
		}
		return nil, infra.WrapRepoErr("failed to lock location stock", err)
	}
	return converter.StockFromRow(row), nil
}

func (r *CatalogRepository) LockItemStocks(ctx context.Context, itemID uuid.UUID) ([]*catalog.LocationStock, error) {
	rows, err := r.queries.LockItemStocks(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock item stock", err)
	}
	stocks := make([]*catalog.LocationStock, 0, len(rows))
	for _, row := range rows {
		stocks = append(stocks, converter.StockFromRow(row))
	}
	return stocks, nil
}

func (r *CatalogRepository) SaveStock(ctx context.Context, s *catalog.LocationStock) error {
	err := r.queries.UpsertLocationStock(ctx, r.db, sqlc.UpsertLocationStockParams{
		ItemID:         s.ItemID(),
		LocationID:     s.LocationID(),
		Quantity:       pgconv.Int32(s.Quantity()),
		DailyRateCents: s.DailyRateCents(),
		UpdatedAt:      pgconv.TimeToPgtype(s.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save location stock", err)
	}
	return nil
}

func (r *CatalogRepository) DeleteStock(ctx context.Context, itemID, locationID uuid.UUID) error {
	n, err := r.queries.DeleteLocationStock(ctx, r.db, sqlc.DeleteLocationStockParams{
		ItemID:     itemID,
		LocationID: locationID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete location stock", err)
	}
	if n == 0 {
		return errs.NewNotFoundError("location stock", itemID.String()+"@"+locationID.String())
	}
	return nil
}
