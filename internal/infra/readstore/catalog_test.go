//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"rental-engine/internal/infra/readstore"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/tests/common/builder"
	readstoremock "rental-engine/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogStore(t *testing.T) (*readstore.CatalogReadStore, *readstoremock.MockCatalogViewQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCatalogViewQueries(ctrl)
	mockDB := &mockDBTX{}
	return readstore.NewCatalogReadStore(mockQueries, mockDB), mockQueries, mockDB
}

func TestCatalogReadStore_FindItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store, mockQueries, mockDB := newCatalogStore(t)
		b := builder.NewItemBuilder()
		mockQueries.EXPECT().GetItem(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)

		actual, err := store.FindItem(ctx, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), actual); diff != "" {
			t.Errorf("item view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		store, mockQueries, mockDB := newCatalogStore(t)
		id := uuid.New()
		mockQueries.EXPECT().GetItem(ctx, mockDB, id).Return(sqlc.Items{}, pgx.ErrNoRows)

		_, err := store.FindItem(ctx, id)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCatalogReadStore_ListItems(t *testing.T) {
	ctx := context.Background()
	store, mockQueries, mockDB := newCatalogStore(t)

	a, b := builder.NewItemBuilder(), builder.NewItemBuilder().WithName("Tile cutter")
	mockQueries.EXPECT().ListItems(ctx, mockDB, sqlc.ListItemsParams{Limit: 20, Offset: 40}).
		Return([]sqlc.Items{a.BuildRow(), b.BuildRow()}, nil)

	views, err := store.ListItems(ctx, 20, 40)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Tile cutter", views[1].Name)
}

func TestCatalogReadStore_ListItemStocks(t *testing.T) {
	ctx := context.Background()
	store, mockQueries, mockDB := newCatalogStore(t)
	itemID, locationID := uuid.New(), uuid.New()

	mockQueries.EXPECT().ListItemStocks(ctx, mockDB, itemID).Return([]sqlc.ListItemStocksRow{{
		ItemID:         itemID,
		LocationID:     locationID,
		LocationName:   "North depot",
		Quantity:       3,
		DailyRateCents: 2500,
		UpdatedAt:      pgconv.TimeToPgtype(builder.BaseTime),
	}}, nil)

	views, err := store.ListItemStocks(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 3, views[0].Quantity)
	assert.Equal(t, "North depot", views[0].LocationName)
	assert.True(t, views[0].UpdatedAt.Equal(builder.BaseTime))
}

func TestCatalogReadStore_Locations(t *testing.T) {
	ctx := context.Background()

	t.Run("find", func(t *testing.T) {
		store, mockQueries, mockDB := newCatalogStore(t)
		b := builder.NewLocationBuilder()
		mockQueries.EXPECT().GetLocation(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)

		actual, err := store.FindLocation(ctx, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), actual); diff != "" {
			t.Errorf("location view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("list", func(t *testing.T) {
		store, mockQueries, mockDB := newCatalogStore(t)
		mockQueries.EXPECT().ListLocations(ctx, mockDB).Return([]sqlc.Locations{
			builder.NewLocationBuilder().BuildRow(),
			builder.NewLocationBuilder().WithName("South yard").BuildRow(),
		}, nil)

		views, err := store.ListLocations(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "South yard", views[1].Name)
	})

	t.Run("error: database failure", func(t *testing.T) {
		store, mockQueries, mockDB := newCatalogStore(t)
		mockQueries.EXPECT().ListLocations(ctx, mockDB).Return(nil, errDBConnectionLost)

		_, err := store.ListLocations(ctx)
		assert.Error(t, err)
	})
}
