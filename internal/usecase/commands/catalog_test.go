//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("stock rows inherit the default rate unless given", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "A", Address: "a"})
		require.NoError(t, err)
		b, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "B", Address: "b"})
		require.NoError(t, err)

		special := int64(900)
		item, err := f.catalog.CreateItem(ctx, commands.CreateItemRequest{
			Name:                  "Scaffold tower",
			DefaultDailyRateCents: 1200,
			Stock: []commands.StockEntry{
				{LocationID: a.ID(), Quantity: 2},
				{LocationID: b.ID(), Quantity: 1, DailyRateCents: &special},
			},
		})
		require.NoError(t, err)

		sa, err := f.reads.FindStock(ctx, item.ID(), a.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, sa.Quantity)
		assert.Equal(t, int64(1200), sa.DailyRateCents)

		sb, err := f.reads.FindStock(ctx, item.ID(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(900), sb.DailyRateCents)
	})

	t.Run("unknown location rolls the item back", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.catalog.CreateItem(ctx, commands.CreateItemRequest{
			Name:  "Ladder",
			Stock: []commands.StockEntry{{LocationID: uuid.New(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)

		items, err := f.reads.ListItems(ctx, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("duplicate location is a validation error", func(t *testing.T) {
		f := newFixture(t)
		loc := uuid.New()
		_, err := f.catalog.CreateItem(ctx, commands.CreateItemRequest{
			Name:  "Ladder",
			Stock: []commands.StockEntry{{LocationID: loc, Quantity: 1}, {LocationID: loc, Quantity: 2}},
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("blank name", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.catalog.CreateItem(ctx, commands.CreateItemRequest{Name: "  "})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	itemID, _ := f.stockedPair(t, 1)

	name := "Rotary hammer"
	updated, err := f.catalog.UpdateItem(ctx, itemID, commands.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Rotary hammer", updated.Name())
	assert.Equal(t, int64(2500), updated.DefaultDailyRateCents())

	_, err = f.catalog.UpdateItem(ctx, uuid.New(), commands.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	negative := int64(-1)
	_, err = f.catalog.UpdateItem(ctx, itemID, commands.UpdateItemRequest{DefaultDailyRateCents: &negative})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while active bookings exist", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)
		owner := client()

		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)

		err = f.catalog.DeleteItem(ctx, itemID)
		assert.ErrorIs(t, err, errs.ErrConflict)

		_, err = f.reads.FindStock(ctx, itemID, locationID)
		require.NoError(t, err, "stock must survive a refused delete")

		_, err = f.bookings.Cancel(ctx, owner, b.ID())
		require.NoError(t, err)

		require.NoError(t, f.catalog.DeleteItem(ctx, itemID))

		_, err = f.reads.FindItem(ctx, itemID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		_, err = f.reads.FindStock(ctx, itemID, locationID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.GreaterOrEqual(t, f.invalidator.count(itemID, locationID), 1)

		// bookings are never deleted
		view, err := f.reads.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, string(booking.StatusCancelled), view.Status)
	})

	t.Run("completed bookings do not block", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)

		b, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)
		_, err = f.bookings.Confirm(ctx, b.ID())
		require.NoError(t, err)
		f.clock.Set(r0)
		_, err = f.bookings.CompleteElapsed(ctx, 10)
		require.NoError(t, err)

		require.NoError(t, f.catalog.DeleteItem(ctx, itemID))
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.catalog.DeleteItem(ctx, uuid.New()), errs.ErrNotFound)
	})

	t.Run("waits for a transaction adding a pair and booking it", func(t *testing.T) {
		f := newFixture(t)
		itemID, _ := f.stockedPair(t, 1)
		south, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "South depot", Address: "2 Quay Street"})
		require.NoError(t, err)
		services := &booking.Services{
			Clock:           f.clock,
			PriceCalculator: booking.NewDailyRateCalculator(),
			Policy:          booking.Policy{CancellationGrace: grace},
		}
		pickup, ret := day(0)
		window := mustWindow(t, pickup, ret)

		held := make(chan struct{})
		proceed := make(chan struct{})
		txErr := make(chan error, 1)
		go func() {
			txErr <- f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if _, err := tx.Catalog().ShareItem(ctx, itemID); err != nil {
					return err
				}
				close(held)
				<-proceed

				st, err := catalog.NewLocationStock(itemID, south.ID(), 1, 2500, f.clock.Now())
				if err != nil {
					return err
				}
				if err := tx.Catalog().SaveStock(ctx, st); err != nil {
					return err
				}
				b, err := booking.NewBooking(services, uuid.New(), booking.Terms{
					ItemID:     itemID,
					LocationID: south.ID(),
					Window:     window,
					Rate:       booking.ReconstructMoney(2500),
				})
				if err != nil {
					return err
				}
				return tx.Bookings().Create(ctx, b)
			})
		}()
		<-held

		deleted := make(chan error, 1)
		go func() { deleted <- f.catalog.DeleteItem(ctx, itemID) }()

		select {
		case err := <-deleted:
			close(proceed)
			<-txErr
			t.Fatalf("delete finished while the item was shared: %v", err)
		case <-time.After(50 * time.Millisecond):
		}

		close(proceed)
		require.NoError(t, <-txErr)
		assert.ErrorIs(t, <-deleted, errs.ErrConflict)

		_, err = f.reads.FindStock(ctx, itemID, south.ID())
		assert.NoError(t, err, "the new pair must survive the refused delete")
	})
}

func TestSetLocationStock(t *testing.T) {
	ctx := context.Background()

	t.Run("cannot drop below committed peak", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 3)
		p0, r0 := day(0)
		p1, r1 := day(1)

		for range 2 {
			_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
			require.NoError(t, err)
		}
		_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p1, r1))
		require.NoError(t, err)

		_, err = f.catalog.SetLocationStock(ctx, itemID, locationID, 1, nil)
		var conflict *booking.CapacityConflictError
		require.ErrorAs(t, err, &conflict)
		assert.ErrorIs(t, err, errs.ErrCapacityConflict)
		assert.Equal(t, 2, conflict.Peak)

		st, err := f.catalog.SetLocationStock(ctx, itemID, locationID, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, st.Quantity())
		assert.Equal(t, int64(2500), st.DailyRateCents(), "rate is kept when not given")

		_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
		_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p1, r1))
		require.NoError(t, err)
	})

	t.Run("elapsed bookings no longer count", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)

		_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)

		f.clock.Set(r0)
		_, err = f.catalog.SetLocationStock(ctx, itemID, locationID, 0, nil)
		require.NoError(t, err)
	})

	t.Run("adds a location to the carrying set", func(t *testing.T) {
		f := newFixture(t)
		itemID, _ := f.stockedPair(t, 1)
		loc, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "East", Address: "e"})
		require.NoError(t, err)

		st, err := f.catalog.SetLocationStock(ctx, itemID, loc.ID(), 4, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), st.DailyRateCents())
		assert.Equal(t, 1, f.invalidator.count(itemID, loc.ID()))
	})

	t.Run("rejections", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)

		_, err := f.catalog.SetLocationStock(ctx, itemID, locationID, -1, nil)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = f.catalog.SetLocationStock(ctx, uuid.New(), locationID, 1, nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = f.catalog.SetLocationStock(ctx, itemID, uuid.New(), 1, nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRemoveLocationStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	itemID, locationID := f.stockedPair(t, 1)
	p0, r0 := day(0)
	owner := client()

	b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p0, r0))
	require.NoError(t, err)

	err = f.catalog.RemoveLocationStock(ctx, itemID, locationID)
	assert.ErrorIs(t, err, errs.ErrCapacityConflict)

	_, err = f.bookings.Cancel(ctx, owner, b.ID())
	require.NoError(t, err)
	require.NoError(t, f.catalog.RemoveLocationStock(ctx, itemID, locationID))

	_, err = f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p0, r0))
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, f.catalog.RemoveLocationStock(ctx, itemID, locationID), errs.ErrNotFound)
}

func TestLocations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "Nowhere"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	itemID, locationID := f.stockedPair(t, 1)

	updated, err := f.catalog.UpdateLocation(ctx, locationID, commands.LocationRequest{
		Name:         "North depot",
		Address:      "2 Quay Street",
		WorkingHours: "24/7",
	})
	require.NoError(t, err)
	assert.Equal(t, "2 Quay Street", updated.Address())

	err = f.catalog.DeleteLocation(ctx, locationID)
	assert.ErrorIs(t, err, errs.ErrConflict)

	require.NoError(t, f.catalog.RemoveLocationStock(ctx, itemID, locationID))
	require.NoError(t, f.catalog.DeleteLocation(ctx, locationID))

	_, err = f.reads.FindLocation(ctx, locationID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, f.catalog.DeleteLocation(ctx, locationID), errs.ErrNotFound)
}
