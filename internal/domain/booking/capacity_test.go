//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2030, time.June, 1, 10, 0, 0, 0, time.UTC)

func window(t *testing.T, fromHours, toHours int) booking.Window {
	t.Helper()
	w, err := booking.NewWindow(t0.Add(time.Duration(fromHours)*time.Hour), t0.Add(time.Duration(toHours)*time.Hour))
	require.NoError(t, err)
	return w
}

func TestAvailability(t *testing.T) {
	itemID, locationID := uuid.New(), uuid.New()

	cases := []struct {
		name         string
		stock        int
		overlapping  int
		expected     int
		inconsistent bool
	}{
		{name: "nothing booked", stock: 3, overlapping: 0, expected: 3},
		{name: "partially booked", stock: 3, overlapping: 2, expected: 1},
		{name: "fully booked", stock: 3, overlapping: 3, expected: 0},
		{name: "no stock", stock: 0, overlapping: 0, expected: 0},
		{name: "overcommitted is clamped", stock: 1, overlapping: 3, expected: 0, inconsistent: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, incons := booking.Availability(itemID, locationID, tc.stock, tc.overlapping)
			assert.Equal(t, tc.expected, actual)
			if !tc.inconsistent {
				assert.Nil(t, incons)
				return
			}
			require.NotNil(t, incons)
			assert.ErrorIs(t, incons, errs.ErrInternalInconsistency)
			assert.Equal(t, tc.stock, incons.Stock)
			assert.Equal(t, tc.overlapping, incons.Overlapping)
		})
	}
}

func TestWindowOverlaps(t *testing.T) {
	base := window(t, 0, 24)

	cases := []struct {
		name     string
		other    booking.Window
		expected bool
	}{
		{name: "identical", other: window(t, 0, 24), expected: true},
		{name: "contained", other: window(t, 2, 4), expected: true},
		{name: "straddles the start", other: window(t, -5, 1), expected: true},
		{name: "ends exactly at pickup", other: window(t, -5, 0), expected: false},
		{name: "starts exactly at return", other: window(t, 24, 30), expected: false},
		{name: "entirely after", other: window(t, 30, 40), expected: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Overlaps(tc.other))
			assert.Equal(t, tc.expected, tc.other.Overlaps(base))
		})
	}

	assert.True(t, base.Contains(base.Pickup()))
	assert.False(t, base.Contains(base.Return()))
}

func TestPeakConcurrency(t *testing.T) {
	cases := []struct {
		name     string
		windows  []booking.Window
		expected int
	}{
		{name: "empty", expected: 0},
		{name: "single", windows: []booking.Window{window(t, 0, 10)}, expected: 1},
		{
			name:     "back to back windows never overlap",
			windows:  []booking.Window{window(t, 0, 10), window(t, 10, 20), window(t, 20, 30)},
			expected: 1,
		},
		{
			name:     "nested windows",
			windows:  []booking.Window{window(t, 0, 30), window(t, 5, 25), window(t, 10, 20)},
			expected: 3,
		},
		{
			name:     "staggered windows",
			windows:  []booking.Window{window(t, 0, 10), window(t, 5, 15), window(t, 12, 20)},
			expected: 2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.PeakConcurrency(tc.windows))
		})
	}
}

func TestDailyRateCalculator(t *testing.T) {
	calc := booking.NewDailyRateCalculator()

	cases := []struct {
		name     string
		rate     int64
		window   booking.Window
		expected int64
	}{
		{name: "one day", rate: 1800, window: window(t, 0, 24), expected: 1800},
		{name: "three days", rate: 1800, window: window(t, 0, 72), expected: 5400},
		{name: "half a day", rate: 1800, window: window(t, 0, 12), expected: 900},
		{name: "one hour rounds to the nearest cent", rate: 100, window: window(t, 0, 1), expected: 4},
		{name: "free", rate: 0, window: window(t, 0, 48), expected: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := calc.Total(booking.ReconstructMoney(tc.rate), tc.window)
			assert.Equal(t, tc.expected, actual.Cents())
		})
	}
}

func TestNewWindow(t *testing.T) {
	_, err := booking.NewWindow(time.Time{}, t0)
	assert.ErrorIs(t, err, errs.ErrValidation)

	local := time.FixedZone("JST", 9*60*60)
	w, err := booking.NewWindow(t0.In(local), t0.Add(time.Hour).In(local))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, w.Pickup().Location())
	assert.Equal(t, time.Hour, w.Duration())
}
