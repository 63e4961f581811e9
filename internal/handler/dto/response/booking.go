package response

import (
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                   uuid.UUID `json:"id"`
	RenterID             uuid.UUID `json:"renter_id"`
	ItemID               uuid.UUID `json:"item_id"`
	ItemName             string    `json:"item_name,omitempty"`
	LocationID           uuid.UUID `json:"location_id"`
	LocationName         string    `json:"location_name,omitempty"`
	PickupAt             time.Time `json:"pickup_at"`
	ReturnAt             time.Time `json:"return_at"`
	Status               string    `json:"status"`
	RateCents            int64     `json:"rate_cents"`
	TotalCents           int64     `json:"total_cents"`
	CancellationDeadline time.Time `json:"cancellation_deadline"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Bookings: make([]*BookingResponse, len(views))}
	for i, v := range views {
		res.Bookings[i] = FromBookingView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

// FromBooking renders a command result. Catalog names are not loaded on the
// write path and stay empty.
func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                   b.ID(),
		RenterID:             b.RenterID(),
		ItemID:               b.ItemID(),
		LocationID:           b.LocationID(),
		PickupAt:             b.Window().Pickup(),
		ReturnAt:             b.Window().Return(),
		Status:               b.Status().String(),
		RateCents:            b.Rate().Cents(),
		TotalCents:           b.Total().Cents(),
		CancellationDeadline: b.CancellationDeadline(),
		CreatedAt:            b.CreatedAt(),
		UpdatedAt:            b.UpdatedAt(),
	}
}
