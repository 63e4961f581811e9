package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is the read model of a ledger entry. Item and location names
// are empty once the catalog rows are gone.
type BookingView struct {
	ID                   uuid.UUID `json:"id"`
	RenterID             uuid.UUID `json:"renter_id"`
	ItemID               uuid.UUID `json:"item_id"`
	ItemName             string    `json:"item_name"`
	LocationID           uuid.UUID `json:"location_id"`
	LocationName         string    `json:"location_name"`
	PickupAt             time.Time `json:"pickup_at"`
	ReturnAt             time.Time `json:"return_at"`
	Status               string    `json:"status"`
	RateCents            int64     `json:"rate_cents"`
	TotalCents           int64     `json:"total_cents"`
	CancellationDeadline time.Time `json:"cancellation_deadline"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BookingFilter struct {
	RenterID *uuid.UUID
	Status   *string
	Limit    int
	Offset   int
}

type ItemView struct {
	ID                    uuid.UUID    `json:"id"`
	Name                  string       `json:"name"`
	Description           string       `json:"description"`
	DefaultDailyRateCents int64        `json:"default_daily_rate_cents"`
	Stock                 []*StockView `json:"stock"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

type StockView struct {
	ItemID         uuid.UUID `json:"item_id"`
	LocationID     uuid.UUID `json:"location_id"`
	LocationName   string    `json:"location_name"`
	Quantity       int       `json:"quantity"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type LocationView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactInfo  string    `json:"contact_info"`
	WorkingHours string    `json:"working_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AvailabilityView struct {
	ItemID       uuid.UUID `json:"item_id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	PickupAt     time.Time `json:"pickup_at"`
	ReturnAt     time.Time `json:"return_at"`
	Stock        int       `json:"stock"`
	Available    int       `json:"available"`
}
