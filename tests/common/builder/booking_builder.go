//go:build unit || e2e

package builder

import (
	"time"

	"rental-engine/internal/domain/booking"
	reqdto "rental-engine/internal/handler/dto/request"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime is the fixed "now" builders use unless told otherwise.
var BaseTime = time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	RenterID   uuid.UUID
	ItemID     uuid.UUID
	LocationID uuid.UUID
	PickupAt   time.Time
	ReturnAt   time.Time
	RateCents  int64
	Grace      time.Duration
	Now        time.Time
	Status     booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RenterID:   uuid.New(),
		ItemID:     uuid.New(),
		LocationID: uuid.New(),
		PickupAt:   BaseTime.Add(72 * time.Hour),
		ReturnAt:   BaseTime.Add(96 * time.Hour),
		RateCents:  2500,
		Grace:      24 * time.Hour,
		Now:        BaseTime,
		Status:     booking.StatusPending,
	}
}

func (b *BookingBuilder) WithRenter(id uuid.UUID) *BookingBuilder {
	b.RenterID = id
	return b
}

func (b *BookingBuilder) WithPair(itemID, locationID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	b.LocationID = locationID
	return b
}

func (b *BookingBuilder) WithWindow(pickup, ret time.Time) *BookingBuilder {
	b.PickupAt = pickup
	b.ReturnAt = ret
	return b
}

func (b *BookingBuilder) WithRate(cents int64) *BookingBuilder {
	b.RateCents = cents
	return b
}

func (b *BookingBuilder) WithGrace(d time.Duration) *BookingBuilder {
	b.Grace = d
	return b
}

func (b *BookingBuilder) WithNow(t time.Time) *BookingBuilder {
	b.Now = t
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: booking.NewDailyRateCalculator(),
		Policy:          booking.Policy{CancellationGrace: b.Grace},
	}
}

func (b *BookingBuilder) Terms() (booking.Terms, error) {
	w, err := booking.NewWindow(b.PickupAt, b.ReturnAt)
	if err != nil {
		return booking.Terms{}, err
	}
	rate, err := booking.NewMoney(b.RateCents)
	if err != nil {
		return booking.Terms{}, err
	}
	return booking.Terms{ItemID: b.ItemID, LocationID: b.LocationID, Window: w, Rate: rate}, nil
}

// BuildDomain creates a pending booking through the constructor.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	terms, err := b.Terms()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Services(), b.RenterID, terms)
}

// BuildReconstructed bypasses validation, for stored bookings in any status.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	w := booking.ReconstructWindow(b.PickupAt, b.ReturnAt)
	rate := booking.ReconstructMoney(b.RateCents)
	total := booking.NewDailyRateCalculator().Total(rate, w)
	return booking.Reconstruct(
		uuid.New(), b.RenterID,
		booking.Terms{ItemID: b.ItemID, LocationID: b.LocationID, Window: w, Rate: rate},
		b.Status, total,
		booking.Policy{CancellationGrace: b.Grace}.DeadlineFor(w),
		b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildReserveRequestDTO() reqdto.ReserveBookingRequest {
	return reqdto.ReserveBookingRequest{
		ItemID:     b.ItemID,
		LocationID: b.LocationID,
		PickupAt:   b.PickupAt,
		ReturnAt:   b.ReturnAt,
	}
}

func (b *BookingBuilder) BuildRow() sqlc.Bookings {
	d := b.BuildReconstructed()
	return sqlc.Bookings{
		ID:                   d.ID(),
		RenterID:             d.RenterID(),
		ItemID:               d.ItemID(),
		LocationID:           d.LocationID(),
		PickupAt:             pgconv.TimeToPgtype(d.Window().Pickup()),
		ReturnAt:             pgconv.TimeToPgtype(d.Window().Return()),
		Status:               d.Status().String(),
		RateCents:            d.Rate().Cents(),
		TotalCents:           d.Total().Cents(),
		CancellationDeadline: pgconv.TimeToPgtype(d.CancellationDeadline()),
		CreatedAt:            pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	d := b.BuildReconstructed()
	return &queries.BookingView{
		ID:                   d.ID(),
		RenterID:             d.RenterID(),
		ItemID:               d.ItemID(),
		ItemName:             "Hammer drill",
		LocationID:           d.LocationID(),
		LocationName:         "North depot",
		PickupAt:             d.Window().Pickup(),
		ReturnAt:             d.Window().Return(),
		Status:               d.Status().String(),
		RateCents:            d.Rate().Cents(),
		TotalCents:           d.Total().Cents(),
		CancellationDeadline: d.CancellationDeadline(),
		CreatedAt:            d.CreatedAt(),
		UpdatedAt:            d.UpdatedAt(),
	}
}
