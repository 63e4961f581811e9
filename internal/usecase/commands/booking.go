package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/domain/user"
	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/obs"
	"rental-engine/internal/pkg/patch"
	"rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ReserveRequest struct {
	// RenterID defaults to the actor. Only privileged actors may book for
	// someone else.
	RenterID   *uuid.UUID
	ItemID     uuid.UUID
	LocationID uuid.UUID
	PickupAt   time.Time
	ReturnAt   time.Time
	// DailyRateCents defaults to the rate of the stock row.
	DailyRateCents *int64
}

type UpdateBookingRequest struct {
	ItemID         *uuid.UUID
	LocationID     *uuid.UUID
	PickupAt       *time.Time
	ReturnAt       *time.Time
	DailyRateCents *int64
}

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock rental-engine/internal/usecase/commands BookingCommands,CatalogCommands

type BookingCommands interface {
	Reserve(ctx context.Context, actor user.Actor, req ReserveRequest) (*booking.Booking, error)
	Confirm(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, actor user.Actor, bookingID uuid.UUID, req UpdateBookingRequest) (*booking.Booking, error)
	// CompleteElapsed moves confirmed bookings whose return has passed to
	// completed and reports how many were moved.
	CompleteElapsed(ctx context.Context, limit int) (int, error)
	// StrictAvailability computes free units under the pair lock.
	StrictAvailability(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window) (int, error)
}

type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	services    *booking.Services
	invalidator shared.AvailabilityInvalidator
	logger      *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	policy booking.Policy,
	invalidator shared.AvailabilityInvalidator,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow: uow,
		services: &booking.Services{
			Clock:           clk,
			PriceCalculator: booking.NewDailyRateCalculator(),
			Policy:          policy,
		},
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *bookingCommandsImpl) Reserve(ctx context.Context, actor user.Actor, req ReserveRequest) (created *booking.Booking, err error) {
	ctx, span := obs.Start(ctx, "booking.reserve",
		attribute.String("item_id", req.ItemID.String()),
		attribute.String("location_id", req.LocationID.String()))
	defer func() { obs.End(span, err) }()

	renterID := patch.Coalesce(req.RenterID, actor.ID)
	if !actor.CanActFor(renterID) {
		return nil, &errs.ForbiddenError{ActorID: actor.ID.String(), Action: "reserve for " + renterID.String()}
	}

	window, err := booking.NewWindow(req.PickupAt, req.ReturnAt)
	if err != nil {
		return nil, err
	}
	if err := window.ValidateFutureAt(uc.services.Clock.Now()); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Catalog().ShareItem(ctx, req.ItemID); err != nil {
			return err
		}
		stock, err := tx.Catalog().LockStock(ctx, req.ItemID, req.LocationID)
		if err != nil {
			return err
		}

		rate, err := booking.NewMoney(patch.Coalesce(req.DailyRateCents, stock.DailyRateCents()))
		if err != nil {
			return err
		}

		terms := booking.Terms{ItemID: req.ItemID, LocationID: req.LocationID, Window: window, Rate: rate}
		b, err := booking.NewBooking(uc.services, renterID, terms)
		if err != nil {
			return err
		}

		if err := uc.ensureCapacity(ctx, tx, stock, window, uuid.Nil); err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := enqueueNotification(ctx, tx, b.CreatedAt(), TopicBookingCreated, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.InvalidatePair(created.ItemID(), created.LocationID())
	uc.logger.InfoContext(ctx, "booking reserved",
		slog.String("booking_id", created.ID().String()),
		slog.String("renter_id", created.RenterID().String()),
		slog.String("window", created.Window().String()))
	return created, nil
}

func (uc *bookingCommandsImpl) Confirm(ctx context.Context, bookingID uuid.UUID) (confirmed *booking.Booking, err error) {
	ctx, span := obs.Start(ctx, "booking.confirm", attribute.String("booking_id", bookingID.String()))
	defer func() { obs.End(span, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		now := uc.services.Clock.Now()
		if err := b.Confirm(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := enqueueNotification(ctx, tx, now, TopicBookingConfirmed, b); err != nil {
			return err
		}
		confirmed = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// Cancel frees the booking's units immediately. Capacity is derived from
// active bookings, so there is no counter to restore.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (cancelled *booking.Booking, err error) {
	ctx, span := obs.Start(ctx, "booking.cancel", attribute.String("booking_id", bookingID.String()))
	defer func() { obs.End(span, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if !actor.CanActFor(b.RenterID()) {
			return &errs.ForbiddenError{ActorID: actor.ID.String(), Action: "cancel booking " + bookingID.String()}
		}
		now := uc.services.Clock.Now()
		if err := b.Cancel(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := enqueueNotification(ctx, tx, now, TopicBookingCancelled, b); err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.InvalidatePair(cancelled.ItemID(), cancelled.LocationID())
	uc.logger.InfoContext(ctx, "booking cancelled",
		slog.String("booking_id", cancelled.ID().String()),
		slog.String("actor_id", actor.ID.String()))
	return cancelled, nil
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, actor user.Actor, bookingID uuid.UUID, req UpdateBookingRequest) (updated *booking.Booking, err error) {
	ctx, span := obs.Start(ctx, "booking.update", attribute.String("booking_id", bookingID.String()))
	defer func() { obs.End(span, err) }()

	var previous booking.Terms
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if !actor.CanActFor(b.RenterID()) {
			return &errs.ForbiddenError{ActorID: actor.ID.String(), Action: "update booking " + bookingID.String()}
		}
		if b.Status() != booking.StatusPending {
			return &booking.TransitionError{
				BookingID: b.ID(),
				From:      b.Status(),
				Action:    "update",
				Reason:    "only pending bookings can be changed",
			}
		}

		previous = b.Terms()
		itemID := patch.Coalesce(req.ItemID, previous.ItemID)
		locationID := patch.Coalesce(req.LocationID, previous.LocationID)

		window, err := booking.NewWindow(
			patch.Coalesce(req.PickupAt, previous.Window.Pickup()),
			patch.Coalesce(req.ReturnAt, previous.Window.Return()),
		)
		if err != nil {
			return err
		}

		if _, err := tx.Catalog().ShareItem(ctx, itemID); err != nil {
			return err
		}
		stock, err := uc.lockPairs(ctx, tx, previous.ItemID, previous.LocationID, itemID, locationID)
		if err != nil {
			return err
		}

		rateCents := previous.Rate.Cents()
		if itemID != previous.ItemID || locationID != previous.LocationID {
			rateCents = stock.DailyRateCents()
		}
		rate, err := booking.NewMoney(patch.Coalesce(req.DailyRateCents, rateCents))
		if err != nil {
			return err
		}

		next := booking.Terms{ItemID: itemID, LocationID: locationID, Window: window, Rate: rate}
		if err := b.Amend(uc.services, next); err != nil {
			return err
		}
		if err := uc.ensureCapacity(ctx, tx, stock, window, b.ID()); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := enqueueNotification(ctx, tx, b.UpdatedAt(), TopicBookingUpdated, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.InvalidatePair(previous.ItemID, previous.LocationID)
	if !updated.Terms().SamePair(previous) {
		uc.invalidator.InvalidatePair(updated.ItemID(), updated.LocationID())
	}
	return updated, nil
}

// lockPairs locks the booking's current pair and its target pair in key
// order and returns the target's stock row.
func (uc *bookingCommandsImpl) lockPairs(ctx context.Context, tx shared.Tx, fromItem, fromLoc, toItem, toLoc uuid.UUID) (*catalog.LocationStock, error) {
	if fromItem == toItem && fromLoc == toLoc {
		return tx.Catalog().LockStock(ctx, toItem, toLoc)
	}

	type pair struct{ item, loc uuid.UUID }
	first, second := pair{fromItem, fromLoc}, pair{toItem, toLoc}
	if pairKey(second.item, second.loc) < pairKey(first.item, first.loc) {
		first, second = second, first
	}

	var target *catalog.LocationStock
	for _, p := range []pair{first, second} {
		st, err := tx.Catalog().LockStock(ctx, p.item, p.loc)
		isTarget := p.item == toItem && p.loc == toLoc
		if err != nil {
			// The source pair may have left the carrying set; only the
			// target must exist.
			if !isTarget && errs.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if isTarget {
			target = st
		}
	}
	return target, nil
}

func pairKey(itemID, locationID uuid.UUID) string {
	return itemID.String() + ":" + locationID.String()
}

// ensureCapacity must run with the pair's stock row locked.
func (uc *bookingCommandsImpl) ensureCapacity(ctx context.Context, tx shared.Tx, stock *catalog.LocationStock, w booking.Window, exclude uuid.UUID) error {
	overlapping, available, err := uc.strictAvailable(ctx, tx, stock, w, exclude)
	if err != nil {
		return err
	}
	if available < 1 {
		return &booking.CapacityExceededError{
			ItemID:      stock.ItemID(),
			LocationID:  stock.LocationID(),
			Window:      w,
			Stock:       stock.Quantity(),
			Overlapping: overlapping,
		}
	}
	return nil
}

func (uc *bookingCommandsImpl) strictAvailable(ctx context.Context, tx shared.Tx, stock *catalog.LocationStock, w booking.Window, exclude uuid.UUID) (overlapping, available int, err error) {
	overlapping, err = tx.Bookings().CountOverlapping(ctx, stock.ItemID(), stock.LocationID(), w, exclude)
	if err != nil {
		return 0, 0, err
	}

	available, inconsistency := booking.Availability(stock.ItemID(), stock.LocationID(), stock.Quantity(), overlapping)
	if inconsistency != nil {
		uc.logger.ErrorContext(ctx, "availability invariant violated",
			slog.String("item_id", stock.ItemID().String()),
			slog.String("location_id", stock.LocationID().String()),
			slog.Int("stock", stock.Quantity()),
			slog.Int("overlapping", overlapping),
			slog.String("window", w.String()))
		return overlapping, 0, inconsistency
	}
	return overlapping, available, nil
}

func (uc *bookingCommandsImpl) StrictAvailability(ctx context.Context, itemID, locationID uuid.UUID, w booking.Window) (int, error) {
	var available int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stock, err := tx.Catalog().LockStock(ctx, itemID, locationID)
		if err != nil {
			return err
		}
		_, available, err = uc.strictAvailable(ctx, tx, stock, w, uuid.Nil)
		return err
	})
	if err != nil {
		return 0, err
	}
	return available, nil
}

func (uc *bookingCommandsImpl) CompleteElapsed(ctx context.Context, limit int) (int, error) {
	now := uc.services.Clock.Now()

	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Bookings().ListElapsedConfirmed(ctx, now, limit)
		return err
	})
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, id := range ids {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			b, err := tx.Bookings().FindForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if err := b.Complete(now); err != nil {
				return err
			}
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return err
			}
			return enqueueNotification(ctx, tx, now, TopicBookingCompleted, b)
		})
		switch {
		case err == nil:
			completed++
		case errs.Is(err, errs.ErrInvalidTransition):
			// cancelled or completed by someone else since listing
			continue
		default:
			return completed, errs.Wrapf(err, "complete booking %s", id)
		}
	}
	return completed, nil
}
