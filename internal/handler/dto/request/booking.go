package request

import (
	"time"

	"rental-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveBookingRequest struct {
	// RenterID is only honoured for managers and admins.
	RenterID       *uuid.UUID `json:"renter_id"`
	ItemID         uuid.UUID  `json:"item_id" binding:"required"`
	LocationID     uuid.UUID  `json:"location_id" binding:"required"`
	PickupAt       time.Time  `json:"pickup_at" binding:"required"`
	ReturnAt       time.Time  `json:"return_at" binding:"required,gtfield=PickupAt"`
	DailyRateCents *int64     `json:"daily_rate_cents" binding:"omitempty,min=0"`
}

func (r *ReserveBookingRequest) ToCommand() commands.ReserveRequest {
	return commands.ReserveRequest{
		RenterID:       r.RenterID,
		ItemID:         r.ItemID,
		LocationID:     r.LocationID,
		PickupAt:       r.PickupAt,
		ReturnAt:       r.ReturnAt,
		DailyRateCents: r.DailyRateCents,
	}
}

type UpdateBookingRequest struct {
	ItemID         *uuid.UUID `json:"item_id"`
	LocationID     *uuid.UUID `json:"location_id"`
	PickupAt       *time.Time `json:"pickup_at"`
	ReturnAt       *time.Time `json:"return_at"`
	DailyRateCents *int64     `json:"daily_rate_cents" binding:"omitempty,min=0"`
}

func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.ItemID == nil && r.LocationID == nil && r.PickupAt == nil && r.ReturnAt == nil && r.DailyRateCents == nil
}

func (r *UpdateBookingRequest) ToCommand() commands.UpdateBookingRequest {
	return commands.UpdateBookingRequest{
		ItemID:         r.ItemID,
		LocationID:     r.LocationID,
		PickupAt:       r.PickupAt,
		ReturnAt:       r.ReturnAt,
		DailyRateCents: r.DailyRateCents,
	}
}

type ListBookingsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Limit  int     `form:"limit" binding:"omitempty,min=1"`
	After  string  `form:"after"`
}

// AvailabilityQuery binds /items/:id/availability. Times are RFC 3339.
type AvailabilityQuery struct {
	PickupAt   time.Time `form:"pickup" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ReturnAt   time.Time `form:"return" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	LocationID string    `form:"location_id" binding:"omitempty,uuid"`
}
