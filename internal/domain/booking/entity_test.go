//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/pkg/errs"
	"rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, b.RenterID, actual.RenterID())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.LocationID, actual.LocationID())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		// one day at 25.00
		assert.Equal(t, int64(2500), actual.Total().Cents())
		assert.Equal(t, b.PickupAt.Add(-b.Grace), actual.CancellationDeadline())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.OwnedBy(b.RenterID))
		assert.False(t, actual.OwnedBy(uuid.New()))
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing renter",
				mutate: func(b *builder.BookingBuilder) { b.WithRenter(uuid.Nil) },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing item",
				mutate: func(b *builder.BookingBuilder) { b.WithPair(uuid.Nil, uuid.New()) },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing location",
				mutate: func(b *builder.BookingBuilder) { b.WithPair(uuid.New(), uuid.Nil) },
				errIs:  errs.ErrValidation,
			},
			{
				name: "return equal to pickup",
				mutate: func(b *builder.BookingBuilder) {
					b.WithWindow(b.PickupAt, b.PickupAt)
				},
				errIs: errs.ErrValidation,
			},
			{
				name: "return before pickup",
				mutate: func(b *builder.BookingBuilder) {
					b.WithWindow(b.PickupAt, b.PickupAt.Add(-time.Hour))
				},
				errIs: errs.ErrValidation,
			},
			{
				name: "pickup equal to now",
				mutate: func(b *builder.BookingBuilder) {
					b.WithWindow(b.Now, b.Now.Add(time.Hour))
				},
				errIs: errs.ErrValidation,
			},
			{
				name: "pickup one nanosecond after now",
				mutate: func(b *builder.BookingBuilder) {
					b.WithWindow(b.Now.Add(time.Nanosecond), b.Now.Add(time.Hour))
				},
			},
			{
				name:   "negative rate",
				mutate: func(b *builder.BookingBuilder) { b.WithRate(-1) },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "free rental",
				mutate: func(b *builder.BookingBuilder) { b.WithRate(0) },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	now := builder.BaseTime

	t.Run("pending to confirmed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		later := now.Add(time.Minute)
		require.NoError(t, b.Confirm(later))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("confirm twice is an invalid transition", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildReconstructed()
		err := b.Confirm(now)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)

		var te *booking.TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, booking.StatusConfirmed, te.From)
	})

	t.Run("terminal statuses accept nothing", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildReconstructed()
			assert.ErrorIs(t, b.Confirm(now), errs.ErrInvalidTransition, status)
			assert.ErrorIs(t, b.Cancel(now), errs.ErrInvalidTransition, status)
			assert.ErrorIs(t, b.Complete(now.Add(30*24*time.Hour)), errs.ErrInvalidTransition, status)
			assert.Equal(t, status, b.Status())
		}
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		err := b.Complete(b.Window().Return().Add(time.Hour))
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("confirmed completes once return has elapsed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildReconstructed()
		ret := b.Window().Return()

		assert.ErrorIs(t, b.Complete(ret.Add(-time.Nanosecond)), errs.ErrInvalidTransition)
		require.NoError(t, b.Complete(ret))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.IsActive())
	})
}

func TestBookingCancelDeadline(t *testing.T) {
	for _, status := range []booking.Status{booking.StatusPending, booking.StatusConfirmed} {
		t.Run(status.String(), func(t *testing.T) {
			cases := []struct {
				name   string
				offset time.Duration
				errIs  error
			}{
				{name: "one nanosecond before the deadline", offset: -time.Nanosecond},
				{name: "at the deadline", offset: 0, errIs: errs.ErrDeadlinePassed},
				{name: "one nanosecond after the deadline", offset: time.Nanosecond, errIs: errs.ErrDeadlinePassed},
			}
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					b := builder.NewBookingBuilder().WithStatus(status).BuildReconstructed()
					at := b.CancellationDeadline().Add(tc.offset)

					err := b.Cancel(at)
					if tc.errIs != nil {
						assert.ErrorIs(t, err, tc.errIs)
						assert.Equal(t, status, b.Status())
						return
					}
					require.NoError(t, err)
					assert.Equal(t, booking.StatusCancelled, b.Status())
					assert.Equal(t, at, b.UpdatedAt())
				})
			}
		})
	}
}

func TestBookingAmend(t *testing.T) {
	b := builder.NewBookingBuilder()
	services := b.Services()

	t.Run("pending booking takes new terms", func(t *testing.T) {
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		terms := actual.Terms()
		terms.Window = booking.ReconstructWindow(b.PickupAt, b.PickupAt.Add(48*time.Hour))
		require.NoError(t, actual.Amend(services, terms))

		assert.Equal(t, int64(5000), actual.Total().Cents())
		assert.True(t, actual.Window().Equal(terms.Window))
		assert.Equal(t, b.PickupAt.Add(-b.Grace), actual.CancellationDeadline())
	})

	t.Run("moved pickup moves the deadline", func(t *testing.T) {
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		terms := actual.Terms()
		pickup := b.PickupAt.Add(24 * time.Hour)
		terms.Window = booking.ReconstructWindow(pickup, pickup.Add(24*time.Hour))
		require.NoError(t, actual.Amend(services, terms))
		assert.Equal(t, pickup.Add(-b.Grace), actual.CancellationDeadline())
	})

	t.Run("past window is rejected", func(t *testing.T) {
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		terms := actual.Terms()
		terms.Window = booking.ReconstructWindow(b.Now.Add(-time.Hour), b.Now.Add(time.Hour))
		assert.ErrorIs(t, actual.Amend(services, terms), errs.ErrValidation)
	})

	t.Run("confirmed booking cannot be amended", func(t *testing.T) {
		actual := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildReconstructed()
		assert.ErrorIs(t, actual.Amend(services, actual.Terms()), errs.ErrInvalidTransition)
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		status, err := booking.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.ParseStatus("returned")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestStatusPriority(t *testing.T) {
	ordered := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCompleted,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Priority(), ordered[i].Priority())
	}
}
