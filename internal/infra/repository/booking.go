package repository

import (
	"context"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/infra"
	"rental-engine/internal/infra/repository/converter"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/repository/repository.go -package=repositorymock rental-engine/internal/infra/repository BookingWriteQueries,CatalogWriteQueries,NotificationWriteQueries

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	ListActiveWindowsEndingAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveWindowsEndingAfterParams) ([]sqlc.ListActiveWindowsEndingAfterRow, error)
	CountActiveBookingsByItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) (int64, error)
	ListElapsedConfirmedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListElapsedConfirmedBookingsParams) ([]uuid.UUID, error)
}

// BookingRepository is bound to one transaction. Bookings are never deleted.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return errs.NewNotFoundError("booking", b.ID().String())
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("booking", id.String())
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return converter.BookingFromRow(row)
}

func (r *BookingRepository) CountOverlapping(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window, exclude uuid.UUID) (int, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		ItemID:       itemID,
		LocationID:   locationID,
		WindowReturn: pgconv.TimeToPgtype(w.Return()),
		WindowPickup: pgconv.TimeToPgtype(w.Pickup()),
		ExcludeID:    exclude,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return int(n), nil
}

func (r *BookingRepository) ActiveWindowsEndingAfter(ctx context.Context, itemID, locationID uuid.UUID, t time.Time) ([]booking.Window, error) {
	rows, err := r.queries.ListActiveWindowsEndingAfter(ctx, r.db, sqlc.ListActiveWindowsEndingAfterParams{
		ItemID:     itemID,
		LocationID: locationID,
		ReturnAt:   pgconv.TimeToPgtype(t),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active windows", err)
	}

	windows := make([]booking.Window, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, booking.ReconstructWindow(
			pgconv.TimeFromPgtype(row.PickupAt),
			pgconv.TimeFromPgtype(row.ReturnAt),
		))
	}
	return windows, nil
}

func (r *BookingRepository) CountActiveByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	n, err := r.queries.CountActiveBookingsByItem(ctx, r.db, itemID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return int(n), nil
}

func (r *BookingRepository) ListElapsedConfirmed(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListElapsedConfirmedBookings(ctx, r.db, sqlc.ListElapsedConfirmedBookingsParams{
		ReturnAt: pgconv.TimeToPgtype(now),
		Limit:    pgconv.Int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list elapsed bookings", err)
	}
	return ids, nil
}
