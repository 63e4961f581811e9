package queries

import (
	"context"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/user"
	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock rental-engine/internal/usecase/queries AvailabilityQueries,BookingQueries,CatalogQueries

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List orders by status priority (pending, confirmed, cancelled,
	// completed) then newest first.
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, status *string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	readStore    BookingReadStore
	defaultLimit int
}

func NewBookingQueries(readStore BookingReadStore, defaultLimit int) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, defaultLimit: defaultLimit}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(view.RenterID) {
		return nil, &errs.ForbiddenError{ActorID: actor.ID.String(), Action: "view booking " + id.String()}
	}
	return view, nil
}

// List returns the actor's own bookings, or every booking for privileged
// roles.
func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, status *string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if status != nil {
		if _, err := booking.ParseStatus(*status); err != nil {
			return nil, nil, err
		}
	}

	offset := 0
	if cursor != nil {
		var err error
		offset, err = DecodeOffsetCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.NewValidationError("cursor", err.Error())
		}
	}

	limit = ValidateLimit(limit, q.defaultLimit)
	filter := BookingFilter{Status: status, Limit: limit + 1, Offset: offset}
	if !actor.Role.IsPrivileged() {
		renterID := actor.ID
		filter.RenterID = &renterID
	}

	rows, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		next = &Cursor{After: EncodeOffsetCursor(offset + limit)}
	}
	return rows, next, nil
}
