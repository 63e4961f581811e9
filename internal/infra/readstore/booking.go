package readstore

import (
	"context"

	"rental-engine/internal/infra"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/readstore/readstore.go -package=readstoremock rental-engine/internal/infra/readstore BookingViewQueries,CatalogViewQueries

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewNotFoundError("booking", id.String())
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return bookingViewFromRow(sqlc.ListBookingViewsRow(row)), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingViewsParams{
		RenterID:  pgconv.UUIDPtrToPgtype(filter.RenterID),
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		RowLimit:  pgconv.Count(filter.Limit),
		RowOffset: pgconv.Count(filter.Offset),
	}

	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, bookingViewFromRow(row))
	}
	return views, nil
}

func bookingViewFromRow(row sqlc.ListBookingViewsRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                   row.ID,
		RenterID:             row.RenterID,
		ItemID:               row.ItemID,
		ItemName:             row.ItemName,
		LocationID:           row.LocationID,
		LocationName:         row.LocationName,
		PickupAt:             pgconv.TimeFromPgtype(row.PickupAt),
		ReturnAt:             pgconv.TimeFromPgtype(row.ReturnAt),
		Status:               row.Status,
		RateCents:            row.RateCents,
		TotalCents:           row.TotalCents,
		CancellationDeadline: pgconv.TimeFromPgtype(row.CancellationDeadline),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
