package booking

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Availability returns stock minus overlapping active bookings, clamped at
// zero. A negative difference means the pair is already overcommitted and is
// reported as an InconsistencyError alongside the clamped value.
func Availability(itemID, locationID uuid.UUID, stock, overlapping int) (int, *InconsistencyError) {
	remaining := stock - overlapping
	if remaining < 0 {
		return 0, &InconsistencyError{
			ItemID:      itemID,
			LocationID:  locationID,
			Stock:       stock,
			Overlapping: overlapping,
		}
	}
	return remaining, nil
}

type edge struct {
	at    time.Time
	delta int
}

// PeakConcurrency returns the largest number of windows sharing any instant.
// Windows are half-open, so one ending exactly when another starts does not
// count as overlap.
func PeakConcurrency(windows []Window) int {
	edges := make([]edge, 0, len(windows)*2)
	for _, w := range windows {
		edges = append(edges, edge{at: w.pickup, delta: 1}, edge{at: w.ret, delta: -1})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at.Equal(edges[j].at) {
			return edges[i].delta < edges[j].delta
		}
		return edges[i].at.Before(edges[j].at)
	})

	peak, running := 0, 0
	for _, e := range edges {
		running += e.delta
		if running > peak {
			peak = running
		}
	}
	return peak
}
