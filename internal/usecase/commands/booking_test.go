//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/usecase/commands"
	"rental-engine/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/sync/errgroup"
)

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success records a pending booking and its notification", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		actor := client()
		pickup, ret := day(0)

		b, err := f.bookings.Reserve(ctx, actor, reserveReq(itemID, locationID, pickup, ret))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, actor.ID, b.RenterID())
		assert.Equal(t, int64(2500), b.Rate().Cents())
		assert.Equal(t, int64(2500), b.Total().Cents())
		assert.Equal(t, pickup.Add(-grace), b.CancellationDeadline())
		assert.Equal(t, 1, f.invalidator.count(itemID, locationID))

		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, commands.TopicBookingCreated, jobs[0].Topic)
		assert.Equal(t, shared.JobStatusQueued, jobs[0].Status)

		var n shared.Notification
		require.NoError(t, json.Unmarshal(jobs[0].Payload, &n))
		assert.Equal(t, b.ID(), n.BookingID)
		assert.Equal(t, actor.ID, n.RecipientID)
		assert.Contains(t, n.Text, "25.00")
	})

	t.Run("explicit rate overrides the stock rate", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		pickup, _ := day(0)
		req := reserveReq(itemID, locationID, pickup, pickup.Add(48*time.Hour))
		rate := int64(1000)
		req.DailyRateCents = &rate

		b, err := f.bookings.Reserve(ctx, client(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), b.Total().Cents())
	})

	t.Run("client cannot reserve for someone else", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		pickup, ret := day(0)
		req := reserveReq(itemID, locationID, pickup, ret)
		other := uuid.New()
		req.RenterID = &other

		_, err := f.bookings.Reserve(ctx, client(), req)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("manager reserves on behalf of a renter", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		pickup, ret := day(0)
		req := reserveReq(itemID, locationID, pickup, ret)
		renter := uuid.New()
		req.RenterID = &renter

		b, err := f.bookings.Reserve(ctx, manager(), req)
		require.NoError(t, err)
		assert.Equal(t, renter, b.RenterID())
	})

	t.Run("rejections", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		pickup, ret := day(0)
		now := f.clock.Now()

		cases := []struct {
			name  string
			req   commands.ReserveRequest
			errIs error
		}{
			{name: "return before pickup", req: reserveReq(itemID, locationID, ret, pickup), errIs: errs.ErrValidation},
			{name: "empty window", req: reserveReq(itemID, locationID, pickup, pickup), errIs: errs.ErrValidation},
			{name: "pickup in the past", req: reserveReq(itemID, locationID, now.Add(-time.Hour), ret), errIs: errs.ErrValidation},
			{name: "pickup now", req: reserveReq(itemID, locationID, now, ret), errIs: errs.ErrValidation},
			{name: "unknown item", req: reserveReq(uuid.New(), locationID, pickup, ret), errIs: errs.ErrNotFound},
			{name: "location does not carry the item", req: reserveReq(itemID, uuid.New(), pickup, ret), errIs: errs.ErrNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.bookings.Reserve(ctx, client(), tc.req)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("zero stock admits nothing", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 0)
		pickup, ret := day(0)

		_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
	})
}

func TestReserveConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("at most stock reservations succeed", func(t *testing.T) {
		const stock, attempts = 5, 40
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, stock)
		pickup, ret := day(0)

		var ok, exceeded atomic.Int32
		var g errgroup.Group
		for i := range attempts {
			// overlapping windows of varying length, all sharing day 0
			req := reserveReq(itemID, locationID, pickup.Add(-time.Duration(i%3)*time.Hour), ret.Add(time.Duration(i%4)*time.Hour))
			g.Go(func() error {
				_, err := f.bookings.Reserve(ctx, client(), req)
				switch {
				case err == nil:
					ok.Add(1)
				case errs.Is(err, errs.ErrCapacityExceeded):
					exceeded.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(stock), ok.Load())
		assert.Equal(t, int32(attempts-stock), exceeded.Load())

		available, err := f.bookings.StrictAvailability(ctx, itemID, locationID, mustWindow(t, pickup, ret))
		require.NoError(t, err)
		assert.Equal(t, 0, available)
	})

	t.Run("stock of one yields exactly one capacity failure for two racers", func(t *testing.T) {
		for range 20 {
			f := newFixture(t)
			itemID, locationID := f.stockedPair(t, 1)
			pickup, ret := day(0)

			results := make([]error, 2)
			var g errgroup.Group
			for i := range results {
				g.Go(func() error {
					_, results[i] = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
					return nil
				})
			}
			require.NoError(t, g.Wait())

			failures := 0
			for _, err := range results {
				if err != nil {
					require.ErrorIs(t, err, errs.ErrCapacityExceeded)
					failures++
				}
			}
			assert.Equal(t, 1, failures)
		}
	})

	t.Run("disjoint windows are both admitted", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		pickup, ret := day(0)
		_, after := day(1)

		var g errgroup.Group
		g.Go(func() error {
			_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
			return err
		})
		g.Go(func() error {
			// starts exactly when the other ends
			_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, ret, after))
			return err
		})
		require.NoError(t, g.Wait())
	})

	t.Run("different pairs do not contend", func(t *testing.T) {
		f := newFixture(t)
		pickup, ret := day(0)

		var g errgroup.Group
		for range 4 {
			itemID, locationID := f.stockedPair(t, 1)
			g.Go(func() error {
				_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
				return err
			})
		}
		require.NoError(t, g.Wait())
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel restores capacity", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		pickup, ret := day(0)
		owner := client()

		first, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, pickup, ret))
		require.NoError(t, err)

		_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)

		cancelled, err := f.bookings.Cancel(ctx, owner, first.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())

		_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
		require.NoError(t, err)

		want := []string{
			commands.TopicBookingCreated,
			commands.TopicBookingCancelled,
			commands.TopicBookingCreated,
		}
		if diff := cmp.Diff(want, f.topics()); diff != "" {
			t.Errorf("notification topics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("deadline boundary", func(t *testing.T) {
		cases := []struct {
			name    string
			offset  time.Duration
			confirm bool
			errIs   error
		}{
			{name: "pending one nanosecond before", offset: -time.Nanosecond},
			{name: "pending at the deadline", offset: 0, errIs: errs.ErrDeadlinePassed},
			{name: "pending one nanosecond after", offset: time.Nanosecond, errIs: errs.ErrDeadlinePassed},
			{name: "confirmed one nanosecond before", offset: -time.Nanosecond, confirm: true},
			{name: "confirmed at the deadline", offset: 0, confirm: true, errIs: errs.ErrDeadlinePassed},
			{name: "confirmed one nanosecond after", offset: time.Nanosecond, confirm: true, errIs: errs.ErrDeadlinePassed},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				itemID, locationID := f.stockedPair(t, 1)
				pickup, ret := day(0)
				owner := client()

				b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, pickup, ret))
				require.NoError(t, err)
				if tc.confirm {
					_, err = f.bookings.Confirm(ctx, b.ID())
					require.NoError(t, err)
				}

				f.clock.Set(b.CancellationDeadline().Add(tc.offset))
				_, err = f.bookings.Cancel(ctx, owner, b.ID())
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					view, ferr := f.reads.FindByID(ctx, b.ID())
					require.NoError(t, ferr)
					assert.NotEqual(t, string(booking.StatusCancelled), view.Status)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("only the owner or staff may cancel", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 2)
		pickup, ret := day(0)
		owner := client()

		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, pickup, ret))
		require.NoError(t, err)

		_, err = f.bookings.Cancel(ctx, client(), b.ID())
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.bookings.Cancel(ctx, manager(), b.ID())
		require.NoError(t, err)

		_, err = f.bookings.Cancel(ctx, owner, b.ID())
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Cancel(ctx, manager(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	itemID, locationID := f.stockedPair(t, 1)
	pickup, ret := day(0)

	b, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
	require.NoError(t, err)

	confirmed, err := f.bookings.Confirm(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, confirmed.Status())

	_, err = f.bookings.Confirm(ctx, b.ID())
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = f.bookings.Confirm(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// a confirmed booking still holds its unit
	_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
	assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("moving into a full window is refused and leaves the booking unchanged", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)
		p1, r1 := day(1)
		owner := client()

		_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)
		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p1, r1))
		require.NoError(t, err)

		_, err = f.bookings.Update(ctx, owner, b.ID(), commands.UpdateBookingRequest{PickupAt: &p0})
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)

		view, err := f.reads.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.True(t, view.PickupAt.Equal(p1))
		assert.Len(t, f.store.Jobs(), 2)
	})

	t.Run("extending a booking does not count against itself", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)
		owner := client()

		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)

		longer := r0.Add(24 * time.Hour)
		updated, err := f.bookings.Update(ctx, owner, b.ID(), commands.UpdateBookingRequest{ReturnAt: &longer})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), updated.Total().Cents())
		assert.Equal(t, b.CancellationDeadline(), updated.CancellationDeadline())
		assert.Equal(t, commands.TopicBookingUpdated, f.topics()[1])
	})

	t.Run("moving to another location uses its rate and frees the old pair", func(t *testing.T) {
		f := newFixture(t)
		itemID, fromLoc := f.stockedPair(t, 1)
		toLoc, err := f.catalog.CreateLocation(ctx, commands.LocationRequest{Name: "South depot", Address: "9 Dock Road"})
		require.NoError(t, err)
		rate := int64(4000)
		_, err = f.catalog.SetLocationStock(ctx, itemID, toLoc.ID(), 1, &rate)
		require.NoError(t, err)

		p0, r0 := day(0)
		owner := client()
		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, fromLoc, p0, r0))
		require.NoError(t, err)

		target := toLoc.ID()
		updated, err := f.bookings.Update(ctx, owner, b.ID(), commands.UpdateBookingRequest{LocationID: &target})
		require.NoError(t, err)
		assert.Equal(t, target, updated.LocationID())
		assert.Equal(t, int64(4000), updated.Rate().Cents())

		_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, fromLoc, p0, r0))
		require.NoError(t, err)
	})

	t.Run("only pending bookings change", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)
		owner := client()

		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)
		_, err = f.bookings.Confirm(ctx, b.ID())
		require.NoError(t, err)

		longer := r0.Add(time.Hour)
		_, err = f.bookings.Update(ctx, owner, b.ID(), commands.UpdateBookingRequest{ReturnAt: &longer})
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("strangers are refused", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)

		b, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)

		longer := r0.Add(time.Hour)
		_, err = f.bookings.Update(ctx, client(), b.ID(), commands.UpdateBookingRequest{ReturnAt: &longer})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("inverted window", func(t *testing.T) {
		f := newFixture(t)
		itemID, locationID := f.stockedPair(t, 1)
		p0, r0 := day(0)
		owner := client()

		b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, p0, r0))
		require.NoError(t, err)

		early := p0.Add(-time.Hour)
		_, err = f.bookings.Update(ctx, owner, b.ID(), commands.UpdateBookingRequest{ReturnAt: &early})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestCompleteElapsed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	itemID, locationID := f.stockedPair(t, 3)
	p0, r0 := day(0)

	confirmed, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
	require.NoError(t, err)
	_, err = f.bookings.Confirm(ctx, confirmed.ID())
	require.NoError(t, err)

	pending, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
	require.NoError(t, err)

	f.clock.Set(r0.Add(-time.Nanosecond))
	n, err := f.bookings.CompleteElapsed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	f.clock.Set(r0)
	n, err = f.bookings.CompleteElapsed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	view, err := f.reads.FindByID(ctx, confirmed.ID())
	require.NoError(t, err)
	assert.Equal(t, string(booking.StatusCompleted), view.Status)

	view, err = f.reads.FindByID(ctx, pending.ID())
	require.NoError(t, err)
	assert.Equal(t, string(booking.StatusPending), view.Status)

	topics := f.topics()
	assert.Equal(t, commands.TopicBookingCompleted, topics[len(topics)-1])

	n, err = f.bookings.CompleteElapsed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStrictAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	itemID, locationID := f.stockedPair(t, 3)
	p0, r0 := day(0)

	_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, p0, r0))
	require.NoError(t, err)

	available, err := f.bookings.StrictAvailability(ctx, itemID, locationID, mustWindow(t, p0, r0))
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	// same query twice returns the same answer
	again, err := f.bookings.StrictAvailability(ctx, itemID, locationID, mustWindow(t, p0, r0))
	require.NoError(t, err)
	assert.Equal(t, available, again)

	p1, r1 := day(1)
	available, err = f.bookings.StrictAvailability(ctx, itemID, locationID, mustWindow(t, p1, r1))
	require.NoError(t, err)
	assert.Equal(t, 3, available)

	_, err = f.bookings.StrictAvailability(ctx, itemID, uuid.New(), mustWindow(t, p0, r0))
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestReserveOverCommittedStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	itemID, locationID := f.stockedPair(t, 2)
	pickup, ret := day(0)

	for range 2 {
		_, err := f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
		require.NoError(t, err)
	}

	// shrink the row underneath the active bookings
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st, err := tx.Catalog().LockStock(ctx, itemID, locationID)
		if err != nil {
			return err
		}
		shrunk := catalog.ReconstructLocationStock(itemID, locationID, 1, st.DailyRateCents(), f.clock.Now())
		return tx.Catalog().SaveStock(ctx, shrunk)
	})
	require.NoError(t, err)

	_, err = f.bookings.Reserve(ctx, client(), reserveReq(itemID, locationID, pickup, ret))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInternalInconsistency)
	assert.NotErrorIs(t, err, errs.ErrCapacityExceeded)

	var incons *booking.InconsistencyError
	require.ErrorAs(t, err, &incons)
	assert.Equal(t, 1, incons.Stock)
	assert.Equal(t, 2, incons.Overlapping)

	assert.Len(t, f.store.Jobs(), 2, "failed reserve must not enqueue a notification")
	assert.Equal(t, 2, f.invalidator.count(itemID, locationID))

	_, err = f.bookings.StrictAvailability(ctx, itemID, locationID, mustWindow(t, pickup, ret))
	assert.ErrorIs(t, err, errs.ErrInternalInconsistency)
}

func TestBookingSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx := context.Background()
	f := newFixture(t)
	itemID, locationID := f.stockedPair(t, 1)
	owner := client()
	pickup, ret := day(0)

	b, err := f.bookings.Reserve(ctx, owner, reserveReq(itemID, locationID, pickup, ret))
	require.NoError(t, err)
	_, err = f.bookings.Confirm(ctx, b.ID())
	require.NoError(t, err)
	_, err = f.bookings.Confirm(ctx, b.ID())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	_, err = f.bookings.Cancel(ctx, owner, b.ID())
	require.NoError(t, err)

	var names []string
	for _, span := range rec.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"booking.reserve", "booking.confirm", "booking.confirm", "booking.cancel"}, names)
	assert.Equal(t, codes.Error, rec.Ended()[2].Status().Code, "failed confirm marks its span")
}

func mustWindow(t *testing.T, pickup, ret time.Time) booking.Window {
	t.Helper()
	w, err := booking.NewWindow(pickup, ret)
	require.NoError(t, err)
	return w
}
