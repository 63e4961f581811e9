//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction, so fixtures
// can run inside a test's own transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestLocation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO locations (id, name, address) VALUES ($1, $2, $3)",
		id, name, name+" street 1")
	require.NoError(t, err)
	return id
}

func CreateTestItem(t *testing.T, db DBLike, name string, dailyRateCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO items (id, name, default_daily_rate_cents) VALUES ($1, $2, $3)",
		id, name, dailyRateCents)
	require.NoError(t, err)
	return id
}

func SetTestStock(t *testing.T, db DBLike, itemID, locationID uuid.UUID, quantity int, dailyRateCents int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO location_stock (item_id, location_id, quantity, daily_rate_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id, location_id) DO UPDATE SET quantity = EXCLUDED.quantity, daily_rate_cents = EXCLUDED.daily_rate_cents`,
		itemID, locationID, quantity, dailyRateCents)
	require.NoError(t, err)
}

// CreateStockedPair creates an item carried by one location with the given
// quantity.
func CreateStockedPair(t *testing.T, db DBLike, quantity int) (itemID, locationID uuid.UUID) {
	t.Helper()

	locationID = CreateTestLocation(t, db, "Depot "+uuid.NewString()[:8])
	itemID = CreateTestItem(t, db, "Drill "+uuid.NewString()[:8], 1500)
	SetTestStock(t, db, itemID, locationID, quantity, 1500)
	return itemID, locationID
}

func CountBookings(t *testing.T, db DBLike, itemID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE item_id = $1 AND status = $2", itemID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// InsertTestBooking writes a booking row directly, bypassing capacity checks.
// Used for states the API cannot produce, such as windows in the past.
func InsertTestBooking(t *testing.T, db DBLike, itemID, locationID, renterID uuid.UUID, pickup, ret time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, renter_id, item_id, location_id, pickup_at, return_at, status, rate_cents, total_cents, cancellation_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1500, 1500, $8)`,
		id, renterID, itemID, locationID, pickup, ret, status, pickup.Add(-24*time.Hour))
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountNotificationJobsByStatus(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE status = $1", status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
