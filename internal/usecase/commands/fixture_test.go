//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/user"
	"rental-engine/internal/infra/memstore"
	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/usecase/shared"
	"rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const grace = 24 * time.Hour

type recordingInvalidator struct {
	mu    sync.Mutex
	pairs [][2]uuid.UUID
}

func (r *recordingInvalidator) InvalidatePair(itemID, locationID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs = append(r.pairs, [2]uuid.UUID{itemID, locationID})
}

func (r *recordingInvalidator) count(itemID, locationID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.pairs {
		if p[0] == itemID && p[1] == locationID {
			n++
		}
	}
	return n
}

type fixture struct {
	store       *memstore.Store
	uow         shared.UnitOfWork
	reads       *memstore.ReadStore
	clock       *clock.MockClock
	invalidator *recordingInvalidator
	bookings    commands.BookingCommands
	catalog     commands.CatalogCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.NewStore()
	uow := memstore.NewUoW(store)
	clk := clock.NewMockClock(builder.BaseTime)
	inv := &recordingInvalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		store:       store,
		uow:         uow,
		reads:       memstore.NewReadStore(store),
		clock:       clk,
		invalidator: inv,
		bookings:    commands.NewBookingCommands(uow, clk, booking.Policy{CancellationGrace: grace}, inv, logger),
		catalog:     commands.NewCatalogCommands(uow, clk, inv, logger),
	}
}

// stockedPair creates a location and an item carrying quantity units there.
func (f *fixture) stockedPair(t *testing.T, quantity int) (itemID, locationID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	loc, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "North depot", Address: "1 Quay Street"})
	require.NoError(t, err)

	item, err := f.catalog.CreateItem(ctx, commands.CreateItemRequest{
		Name:                  "Hammer drill",
		DefaultDailyRateCents: 2500,
		Stock:                 []commands.StockEntry{{LocationID: loc.ID(), Quantity: quantity}},
	})
	require.NoError(t, err)
	return item.ID(), loc.ID()
}

func client() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleClient}
}

func manager() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleManager}
}

// day returns the window covering the n-th day after the fixture's now,
// starting at day 3 so every window is comfortably in the future.
func day(n int) (time.Time, time.Time) {
	start := builder.BaseTime.Add(time.Duration(n+3) * 24 * time.Hour)
	return start, start.Add(24 * time.Hour)
}

func reserveReq(itemID, locationID uuid.UUID, pickup, ret time.Time) commands.ReserveRequest {
	return commands.ReserveRequest{ItemID: itemID, LocationID: locationID, PickupAt: pickup, ReturnAt: ret}
}

func (f *fixture) topics() []string {
	jobs := f.store.Jobs()
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Topic)
	}
	return out
}
