package request

import (
	"rental-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type StockEntryRequest struct {
	LocationID     uuid.UUID `json:"location_id" binding:"required"`
	Quantity       int       `json:"quantity" binding:"min=0"`
	DailyRateCents *int64    `json:"daily_rate_cents" binding:"omitempty,min=0"`
}

type CreateItemRequest struct {
	Name                  string              `json:"name" binding:"required,max=200"`
	Description           string              `json:"description" binding:"max=2000"`
	DefaultDailyRateCents int64               `json:"default_daily_rate_cents" binding:"min=0"`
	Stock                 []StockEntryRequest `json:"stock" binding:"omitempty,dive"`
}

func (r *CreateItemRequest) ToCommand() commands.CreateItemRequest {
	stock := make([]commands.StockEntry, len(r.Stock))
	for i, s := range r.Stock {
		stock[i] = commands.StockEntry{
			LocationID:     s.LocationID,
			Quantity:       s.Quantity,
			DailyRateCents: s.DailyRateCents,
		}
	}
	return commands.CreateItemRequest{
		Name:                  r.Name,
		Description:           r.Description,
		DefaultDailyRateCents: r.DefaultDailyRateCents,
		Stock:                 stock,
	}
}

type UpdateItemRequest struct {
	Name                  *string `json:"name" binding:"omitempty,max=200"`
	Description           *string `json:"description" binding:"omitempty,max=2000"`
	DefaultDailyRateCents *int64  `json:"default_daily_rate_cents" binding:"omitempty,min=0"`
}

func (r *UpdateItemRequest) ToCommand() commands.UpdateItemRequest {
	return commands.UpdateItemRequest{
		Name:                  r.Name,
		Description:           r.Description,
		DefaultDailyRateCents: r.DefaultDailyRateCents,
	}
}

type SetStockRequest struct {
	Quantity       *int   `json:"quantity" binding:"required,min=0"`
	DailyRateCents *int64 `json:"daily_rate_cents" binding:"omitempty,min=0"`
}

type LocationRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Address      string `json:"address" binding:"max=500"`
	ContactInfo  string `json:"contact_info" binding:"max=500"`
	WorkingHours string `json:"working_hours" binding:"max=200"`
}

func (r *LocationRequest) ToCommand() commands.LocationRequest {
	return commands.LocationRequest{
		Name:         r.Name,
		Address:      r.Address,
		ContactInfo:  r.ContactInfo,
		WorkingHours: r.WorkingHours,
	}
}
