//go:build unit || e2e

package builder

import (
	"time"

	"rental-engine/internal/domain/catalog"
	reqdto "rental-engine/internal/handler/dto/request"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID                    uuid.UUID
	Name                  string
	Description           string
	DefaultDailyRateCents int64
	Now                   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:                    uuid.New(),
		Name:                  "Hammer drill",
		Description:           "SDS-plus, 800W",
		DefaultDailyRateCents: 1800,
		Now:                   BaseTime,
	}
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithRate(cents int64) *ItemBuilder {
	b.DefaultDailyRateCents = cents
	return b
}

func (b *ItemBuilder) BuildDomain() (*catalog.Item, error) {
	return catalog.NewItem(b.ID, b.Name, b.Description, b.DefaultDailyRateCents, b.Now)
}

func (b *ItemBuilder) BuildRow() sqlc.Items {
	return sqlc.Items{
		ID:                    b.ID,
		Name:                  b.Name,
		Description:           pgtype.Text{String: b.Description, Valid: b.Description != ""},
		DefaultDailyRateCents: b.DefaultDailyRateCents,
		CreatedAt:             pgconv.TimeToPgtype(b.Now),
		UpdatedAt:             pgconv.TimeToPgtype(b.Now),
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:                    b.ID,
		Name:                  b.Name,
		Description:           b.Description,
		DefaultDailyRateCents: b.DefaultDailyRateCents,
		CreatedAt:             b.Now,
		UpdatedAt:             b.Now,
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	return reqdto.CreateItemRequest{
		Name:                  b.Name,
		Description:           b.Description,
		DefaultDailyRateCents: b.DefaultDailyRateCents,
	}
}

type LocationBuilder struct {
	ID      uuid.UUID
	Details catalog.LocationDetails
	Now     time.Time
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		ID: uuid.New(),
		Details: catalog.LocationDetails{
			Name:         "North depot",
			Address:      "1 Quay Street",
			ContactInfo:  "+1 555 0100",
			WorkingHours: "Mon-Sat 07:00-19:00",
		},
		Now: BaseTime,
	}
}

func (b *LocationBuilder) WithName(name string) *LocationBuilder {
	b.Details.Name = name
	return b
}

func (b *LocationBuilder) BuildDomain() (*catalog.Location, error) {
	return catalog.NewLocation(b.ID, b.Details, b.Now)
}

func (b *LocationBuilder) BuildRow() sqlc.Locations {
	return sqlc.Locations{
		ID:           b.ID,
		Name:         b.Details.Name,
		Address:      b.Details.Address,
		ContactInfo:  pgtype.Text{String: b.Details.ContactInfo, Valid: true},
		WorkingHours: pgtype.Text{String: b.Details.WorkingHours, Valid: true},
		CreatedAt:    pgconv.TimeToPgtype(b.Now),
		UpdatedAt:    pgconv.TimeToPgtype(b.Now),
	}
}

func (b *LocationBuilder) BuildView() *queries.LocationView {
	return &queries.LocationView{
		ID:           b.ID,
		Name:         b.Details.Name,
		Address:      b.Details.Address,
		ContactInfo:  b.Details.ContactInfo,
		WorkingHours: b.Details.WorkingHours,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *LocationBuilder) BuildRequestDTO() reqdto.LocationRequest {
	return reqdto.LocationRequest{
		Name:         b.Details.Name,
		Address:      b.Details.Address,
		ContactInfo:  b.Details.ContactInfo,
		WorkingHours: b.Details.WorkingHours,
	}
}

func NewStockRow(itemID, locationID uuid.UUID, quantity int32, rateCents int64) sqlc.LocationStock {
	return sqlc.LocationStock{
		ItemID:         itemID,
		LocationID:     locationID,
		Quantity:       quantity,
		DailyRateCents: rateCents,
		UpdatedAt:      pgconv.TimeToPgtype(BaseTime),
	}
}
