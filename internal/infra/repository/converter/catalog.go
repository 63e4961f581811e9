package converter

import (
	"rental-engine/internal/domain/catalog"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ItemFromRow(row sqlc.Items) *catalog.Item {
	return catalog.ReconstructItem(
		row.ID,
		row.Name,
		pgconv.StringFromPgtype(row.Description),
		row.DefaultDailyRateCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func LocationFromRow(row sqlc.Locations) *catalog.Location {
	return catalog.ReconstructLocation(
		row.ID,
		catalog.LocationDetails{
			Name:         row.Name,
			Address:      row.Address,
			ContactInfo:  pgconv.StringFromPgtype(row.ContactInfo),
			WorkingHours: pgconv.StringFromPgtype(row.WorkingHours),
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func StockFromRow(row sqlc.LocationStock) *catalog.LocationStock {
	return catalog.ReconstructLocationStock(
		row.ItemID,
		row.LocationID,
		int(row.Quantity),
		row.DailyRateCents,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func OptionalText(s string) pgtype.Text {
	return pgconv.StringPtrToPgtype(&s)
}
