//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/user"
	"rental-engine/internal/infra/memstore"
	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/config"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/worker"
	"rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopInvalidator struct{}

func (noopInvalidator) InvalidatePair(uuid.UUID, uuid.UUID) {}

func TestCompletionSweeper(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	uow := memstore.NewUoW(store)
	reads := memstore.NewReadStore(store)
	clk := clock.NewMockClock(builder.BaseTime)

	bookings := commands.NewBookingCommands(uow, clk, booking.Policy{CancellationGrace: time.Hour}, noopInvalidator{}, discard)
	catalogCmds := commands.NewCatalogCommands(uow, clk, noopInvalidator{}, discard)

	loc, err := catalogCmds.CreateLocation(ctx, commands.LocationRequest{Name: "North depot", Address: "1 Quay Street"})
	require.NoError(t, err)
	item, err := catalogCmds.CreateItem(ctx, commands.CreateItemRequest{
		Name:                  "Hammer drill",
		DefaultDailyRateCents: 2500,
		Stock:                 []commands.StockEntry{{LocationID: loc.ID(), Quantity: 3}},
	})
	require.NoError(t, err)

	renter := user.Actor{ID: uuid.New(), Role: user.RoleClient}
	reserve := func(pickup, ret time.Time) *booking.Booking {
		b, err := bookings.Reserve(ctx, renter, commands.ReserveRequest{
			ItemID: item.ID(), LocationID: loc.ID(), PickupAt: pickup, ReturnAt: ret,
		})
		require.NoError(t, err)
		return b
	}

	pickup := builder.BaseTime.Add(48 * time.Hour)
	shortRet := pickup.Add(24 * time.Hour)
	longRet := pickup.Add(72 * time.Hour)

	short := reserve(pickup, shortRet)
	long := reserve(pickup, longRet)
	pending := reserve(pickup, shortRet)
	for _, b := range []*booking.Booking{short, long} {
		_, err := bookings.Confirm(ctx, b.ID())
		require.NoError(t, err)
	}

	sweeper := worker.NewCompletionSweeper(bookings, config.SchedulerConfig{
		CompletionSweepInterval: time.Minute,
		CompletionBatchSize:     10,
	}, discard)

	status := func(id uuid.UUID) string {
		v, err := reads.FindByID(ctx, id)
		require.NoError(t, err)
		return v.Status
	}

	clk.Set(shortRet.Add(-time.Nanosecond))
	require.NoError(t, sweeper.SweepOnce(ctx))
	assert.Equal(t, "confirmed", status(short.ID()))

	clk.Set(shortRet)
	require.NoError(t, sweeper.SweepOnce(ctx))
	assert.Equal(t, "completed", status(short.ID()))
	assert.Equal(t, "confirmed", status(long.ID()))
	assert.Equal(t, "pending", status(pending.ID()), "pending bookings are never completed")

	clk.Set(longRet.Add(time.Hour))
	require.NoError(t, sweeper.SweepOnce(ctx))
	assert.Equal(t, "completed", status(long.ID()))
}
