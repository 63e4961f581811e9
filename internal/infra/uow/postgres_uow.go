package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"rental-engine/internal/infra/repository"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/config"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/obs"
	"rental-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"

	baseBackoff = 50 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	lockTimeout time.Duration
	maxRetries  int
	logger      *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		lockTimeout: cfg.DB.LockTimeout,
		maxRetries:  max(cfg.DB.TxMaxRetries, 0),
		logger:      logger,
	}
}

// Within runs fn at read committed. Allocation serializes on the stock row
// lock taken inside fn. Deadlocks and lock timeouts on that row roll the
// whole unit back and rerun it.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	ctx, span := obs.Start(ctx, "uow.within")
	defer func() { obs.End(span, err) }()

	for attempt := 0; ; attempt++ {
		err = u.runOnce(ctx, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt >= u.maxRetries {
			u.logger.ErrorContext(ctx, "transaction failed after max retries",
				slog.Int("attempts", attempt+1), slog.Any("error", err))
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt)
		span.AddEvent("retry", traceAttrs(attempt, wait)...)
		u.logger.WarnContext(ctx, "retrying transaction",
			slog.Int("attempt", attempt+1),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runOnce owns a single pgx transaction.
func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.WarnContext(ctx, "rollback failed", slog.Any("error", rbErr))
		}
	}()

	if u.lockTimeout > 0 {
		// SET does not take bind parameters
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", u.lockTimeout.Milliseconds())
		if _, err := pgxTx.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "set lock timeout")
		}
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<min(attempt, 6)) * baseBackoff
	return wait + rand.N(wait/5+1)
}

func traceAttrs(attempt int, wait time.Duration) []trace.EventOption {
	return []trace.EventOption{trace.WithAttributes(
		attribute.Int("attempt", attempt+1),
		attribute.Int64("wait_ms", wait.Milliseconds()),
	)}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// built on first use
	bookingRepo      shared.BookingRepository
	catalogRepo      shared.CatalogRepository
	notificationRepo shared.NotificationRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.uow.q, t.dbtx)
	}
	return t.catalogRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}
