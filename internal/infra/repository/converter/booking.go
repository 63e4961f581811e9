package converter

import (
	"rental-engine/internal/domain/booking"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	w := b.Window()
	return sqlc.CreateBookingParams{
		ID:                   b.ID(),
		RenterID:             b.RenterID(),
		ItemID:               b.ItemID(),
		LocationID:           b.LocationID(),
		PickupAt:             pgconv.TimeToPgtype(w.Pickup()),
		ReturnAt:             pgconv.TimeToPgtype(w.Return()),
		Status:               b.Status().String(),
		RateCents:            b.Rate().Cents(),
		TotalCents:           b.Total().Cents(),
		CancellationDeadline: pgconv.TimeToPgtype(b.CancellationDeadline()),
		CreatedAt:            pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	w := b.Window()
	return sqlc.UpdateBookingParams{
		ID:                   b.ID(),
		ItemID:               b.ItemID(),
		LocationID:           b.LocationID(),
		PickupAt:             pgconv.TimeToPgtype(w.Pickup()),
		ReturnAt:             pgconv.TimeToPgtype(w.Return()),
		Status:               b.Status().String(),
		RateCents:            b.Rate().Cents(),
		TotalCents:           b.Total().Cents(),
		CancellationDeadline: pgconv.TimeToPgtype(b.CancellationDeadline()),
		UpdatedAt:            pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has corrupt status", row.ID)
	}

	terms := booking.Terms{
		ItemID:     row.ItemID,
		LocationID: row.LocationID,
		Window: booking.ReconstructWindow(
			pgconv.TimeFromPgtype(row.PickupAt),
			pgconv.TimeFromPgtype(row.ReturnAt),
		),
		Rate: booking.ReconstructMoney(row.RateCents),
	}

	return booking.Reconstruct(
		row.ID,
		row.RenterID,
		terms,
		status,
		booking.ReconstructMoney(row.TotalCents),
		pgconv.TimeFromPgtype(row.CancellationDeadline),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
