//go:build unit

package repository_test

import (
	"context"
	"testing"

	"rental-engine/internal/infra"
	"rental-engine/internal/infra/repository"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/tests/common/builder"
	repositorymock "rental-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogRepo(t *testing.T) (*repository.CatalogRepository, *repositorymock.MockCatalogWriteQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewCatalogRepository(mockQueries, mockDB), mockQueries, mockDB
}

func TestCatalogRepository_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success: empty description is stored as NULL", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		b := builder.NewItemBuilder()
		b.Description = ""
		it, err := b.BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateItem(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateItemParams) error {
				assert.Equal(t, it.ID(), arg.ID)
				assert.Equal(t, "Hammer drill", arg.Name)
				assert.False(t, arg.Description.Valid)
				assert.Equal(t, int64(1800), arg.DefaultDailyRateCents)
				return nil
			})

		assert.NoError(t, repo.CreateItem(ctx, it))
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateItem(ctx, mockDB, gomock.Any()).Return(errDBConnectionLost)

		err = repo.CreateItem(ctx, it)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogRepository_DeleteItem(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		returnErr  error
		expectIs   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "error: unknown item", rows: 0, expectIs: errs.ErrNotFound},
		{name: "error: database failure", returnErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newCatalogRepo(t)
			id := uuid.New()
			mockQueries.EXPECT().DeleteItem(ctx, mockDB, id).Return(tc.rows, tc.returnErr)

			actualErr := repo.DeleteItem(ctx, id)
			switch {
			case tc.expectIs != nil:
				assert.ErrorIs(t, actualErr, tc.expectIs)
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "got (%v)", actualErr)
			default:
				assert.NoError(t, actualErr)
			}
		})
	}
}

func TestCatalogRepository_FindItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		row := builder.NewItemBuilder().BuildRow()
		mockQueries.EXPECT().GetItem(ctx, mockDB, row.ID).Return(row, nil)

		it, err := repo.FindItem(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.Name, it.Name())
		assert.Equal(t, row.DefaultDailyRateCents, it.DefaultDailyRateCents())
	})

	t.Run("error: not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		id := uuid.New()
		mockQueries.EXPECT().GetItem(ctx, mockDB, id).Return(sqlc.Items{}, pgx.ErrNoRows)

		_, err := repo.FindItem(ctx, id)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCatalogRepository_ItemLocks(t *testing.T) {
	ctx := context.Background()

	t.Run("lock item for delete", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		row := builder.NewItemBuilder().BuildRow()
		mockQueries.EXPECT().LockItem(ctx, mockDB, row.ID).Return(row, nil)

		it, err := repo.LockItem(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, it.ID())
	})

	t.Run("share item for allocation", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		row := builder.NewItemBuilder().BuildRow()
		mockQueries.EXPECT().KeyShareItem(ctx, mockDB, row.ID).Return(row, nil)

		it, err := repo.ShareItem(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.Name, it.Name())
	})

	t.Run("error: deleted item is not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		id := uuid.New()
		mockQueries.EXPECT().KeyShareItem(ctx, mockDB, id).Return(sqlc.Items{}, pgx.ErrNoRows)

		_, err := repo.ShareItem(ctx, id)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("error: lock timeout stays retryable", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		id := uuid.New()
		mockQueries.EXPECT().LockItem(ctx, mockDB, id).Return(sqlc.Items{}, &pgconn.PgError{Code: "55P03"})

		_, err := repo.LockItem(ctx, id)
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "55P03", pgErr.Code)
	})
}

func TestCatalogRepository_DeleteLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("error: referenced location maps to conflict", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		id := uuid.New()
		mockQueries.EXPECT().DeleteLocation(ctx, mockDB, id).Return(int64(0), &pgconn.PgError{Code: "23503"})

		err := repo.DeleteLocation(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestCatalogRepository_LockStock(t *testing.T) {
	ctx := context.Background()
	itemID, locationID := uuid.New(), uuid.New()
	params := sqlc.LockLocationStockParams{ItemID: itemID, LocationID: locationID}

	t.Run("success", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		mockQueries.EXPECT().LockLocationStock(ctx, mockDB, params).
			Return(builder.NewStockRow(itemID, locationID, 4, 2500), nil)

		stock, err := repo.LockStock(ctx, itemID, locationID)
		require.NoError(t, err)
		assert.Equal(t, 4, stock.Quantity())
		assert.Equal(t, int64(2500), stock.DailyRateCents())
	})

	t.Run("error: pair not carried", func(t *testing.T) {
		repo, mockQueries, mockDB := newCatalogRepo(t)
		mockQueries.EXPECT().LockLocationStock(ctx, mockDB, params).Return(sqlc.LocationStock{}, pgx.ErrNoRows)

		_, err := repo.LockStock(ctx, itemID, locationID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCatalogRepository_LockItemStocks(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newCatalogRepo(t)
	itemID := uuid.New()

	mockQueries.EXPECT().LockItemStocks(ctx, mockDB, itemID).Return([]sqlc.LocationStock{
		builder.NewStockRow(itemID, uuid.New(), 1, 100),
		builder.NewStockRow(itemID, uuid.New(), 2, 200),
	}, nil)

	stocks, err := repo.LockItemStocks(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	assert.Equal(t, 2, stocks[1].Quantity())
}

func TestCatalogRepository_SaveStock(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newCatalogRepo(t)

	itemID, locationID := uuid.New(), uuid.New()
	stock, err := catalogStock(itemID, locationID, 7)
	require.NoError(t, err)

	mockQueries.EXPECT().UpsertLocationStock(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertLocationStockParams) error {
			assert.Equal(t, itemID, arg.ItemID)
			assert.Equal(t, locationID, arg.LocationID)
			assert.Equal(t, int32(7), arg.Quantity)
			return nil
		})

	assert.NoError(t, repo.SaveStock(ctx, stock))
}

func TestCatalogRepository_DeleteStock(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newCatalogRepo(t)
	itemID, locationID := uuid.New(), uuid.New()

	mockQueries.EXPECT().DeleteLocationStock(ctx, mockDB, sqlc.DeleteLocationStockParams{
		ItemID:     itemID,
		LocationID: locationID,
	}).Return(int64(0), nil)

	err := repo.DeleteStock(ctx, itemID, locationID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
