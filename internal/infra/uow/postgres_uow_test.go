//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"rental-engine/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "stock row lock timeout", err: &pgconn.PgError{Code: "55P03"}, expected: true},
		{
			name:     "wrapped by a repository",
			err:      infra.WrapRepoErr("failed to lock stock", &pgconn.PgError{Code: "55P03"}),
			expected: true,
		},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestBackoff(t *testing.T) {
	for attempt := range 10 {
		base := time.Duration(1<<min(attempt, 6)) * baseBackoff
		for range 20 {
			wait := backoff(attempt)
			assert.GreaterOrEqual(t, wait, base)
			assert.LessOrEqual(t, wait, base+base/5)
		}
	}
}
