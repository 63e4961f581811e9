package response

import (
	"time"

	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StockResponse struct {
	ItemID         uuid.UUID `json:"item_id"`
	LocationID     uuid.UUID `json:"location_id"`
	LocationName   string    `json:"location_name,omitempty"`
	Quantity       int       `json:"quantity"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ItemResponse struct {
	ID                    uuid.UUID        `json:"id"`
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	DefaultDailyRateCents int64            `json:"default_daily_rate_cents"`
	Stock                 []*StockResponse `json:"stock,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type ItemListResponse struct {
	Items      []*ItemResponse `json:"items"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

type LocationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactInfo  string    `json:"contact_info"`
	WorkingHours string    `json:"working_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AvailabilityResponse struct {
	ItemID       uuid.UUID `json:"item_id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name,omitempty"`
	PickupAt     time.Time `json:"pickup_at"`
	ReturnAt     time.Time `json:"return_at"`
	Stock        int       `json:"stock"`
	Available    int       `json:"available"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	res := &ItemResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromItemList(views []*queries.ItemView, next *queries.Cursor) *ItemListResponse {
	res := &ItemListResponse{Items: make([]*ItemResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromItemView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromItem(item *catalog.Item) *ItemResponse {
	return &ItemResponse{
		ID:                    item.ID(),
		Name:                  item.Name(),
		Description:           item.Description(),
		DefaultDailyRateCents: item.DefaultDailyRateCents(),
		CreatedAt:             item.CreatedAt(),
		UpdatedAt:             item.UpdatedAt(),
	}
}

func FromStock(s *catalog.LocationStock) *StockResponse {
	return &StockResponse{
		ItemID:         s.ItemID(),
		LocationID:     s.LocationID(),
		Quantity:       s.Quantity(),
		DailyRateCents: s.DailyRateCents(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func FromLocationView(v *queries.LocationView) *LocationResponse {
	res := &LocationResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromLocationList(views []*queries.LocationView) []*LocationResponse {
	res := make([]*LocationResponse, len(views))
	for i, v := range views {
		res[i] = FromLocationView(v)
	}
	return res
}

func FromLocation(l *catalog.Location) *LocationResponse {
	return &LocationResponse{
		ID:           l.ID(),
		Name:         l.Name(),
		Address:      l.Address(),
		ContactInfo:  l.ContactInfo(),
		WorkingHours: l.WorkingHours(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}

func FromAvailability(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromAvailabilityList(views []*queries.AvailabilityView) []*AvailabilityResponse {
	res := make([]*AvailabilityResponse, len(views))
	for i, v := range views {
		res[i] = FromAvailability(v)
	}
	return res
}
