package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/pkg/clock"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/patch"
	"rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type StockEntry struct {
	LocationID     uuid.UUID
	Quantity       int
	DailyRateCents *int64
}

type CreateItemRequest struct {
	Name                  string
	Description           string
	DefaultDailyRateCents int64
	Stock                 []StockEntry
}

type UpdateItemRequest struct {
	Name                  *string
	Description           *string
	DefaultDailyRateCents *int64
}

type LocationRequest struct {
	Name         string
	Address      string
	ContactInfo  string
	WorkingHours string
}

type CatalogCommands interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*catalog.Item, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*catalog.Item, error)
	// DeleteItem removes the item and its stock rows. It fails with a
	// ConflictError while any pending or confirmed booking references it.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	SetLocationStock(ctx context.Context, itemID, locationID uuid.UUID, quantity int, dailyRateCents *int64) (*catalog.LocationStock, error)
	// RemoveLocationStock drops the location from the item's carrying set.
	RemoveLocationStock(ctx context.Context, itemID, locationID uuid.UUID) error

	CreateLocation(ctx context.Context, req LocationRequest) (*catalog.Location, error)
	UpdateLocation(ctx context.Context, locationID uuid.UUID, req LocationRequest) (*catalog.Location, error)
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	invalidator shared.AvailabilityInvalidator
	logger      *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock, invalidator shared.AvailabilityInvalidator, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk, invalidator: invalidator, logger: logger}
}

func (uc *catalogCommandsImpl) CreateItem(ctx context.Context, req CreateItemRequest) (*catalog.Item, error) {
	now := uc.clock.Now()
	item, err := catalog.NewItem(uuid.New(), req.Name, req.Description, req.DefaultDailyRateCents, now)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(req.Stock))
	stocks := make([]*catalog.LocationStock, 0, len(req.Stock))
	for i, e := range req.Stock {
		if _, dup := seen[e.LocationID]; dup {
			return nil, errs.NewValidationError(fmt.Sprintf("stock[%d].location_id", i), "is listed twice")
		}
		seen[e.LocationID] = struct{}{}

		rate := patch.Coalesce(e.DailyRateCents, item.DefaultDailyRateCents())
		st, err := catalog.NewLocationStock(item.ID(), e.LocationID, e.Quantity, rate, now)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, st)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().CreateItem(ctx, item); err != nil {
			return err
		}
		for _, st := range stocks {
			if _, err := tx.Catalog().FindLocation(ctx, st.LocationID()); err != nil {
				return err
			}
			if err := tx.Catalog().SaveStock(ctx, st); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *catalogCommandsImpl) UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*catalog.Item, error) {
	var updated *catalog.Item
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Catalog().FindItem(ctx, itemID)
		if err != nil {
			return err
		}
		err = item.Update(
			patch.Coalesce(req.Name, item.Name()),
			patch.Coalesce(req.Description, item.Description()),
			patch.Coalesce(req.DefaultDailyRateCents, item.DefaultDailyRateCents()),
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err := tx.Catalog().UpdateItem(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *catalogCommandsImpl) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	var pairs []*catalog.LocationStock
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The item lock waits out transactions that are adding stock rows or
		// bookings for the item; the stock locks cover reserves on rows that
		// already exist.
		if _, err := tx.Catalog().LockItem(ctx, itemID); err != nil {
			return err
		}
		stocks, err := tx.Catalog().LockItemStocks(ctx, itemID)
		if err != nil {
			return err
		}

		active, err := tx.Bookings().CountActiveByItem(ctx, itemID)
		if err != nil {
			return err
		}
		if active > 0 {
			return errs.NewConflictError("item", itemID.String(),
				fmt.Sprintf("%d pending or confirmed bookings still reference it", active))
		}

		if err := tx.Catalog().DeleteItem(ctx, itemID); err != nil {
			return err
		}
		pairs = stocks
		return nil
	})
	if err != nil {
		return err
	}

	for _, st := range pairs {
		uc.invalidator.InvalidatePair(st.ItemID(), st.LocationID())
	}
	uc.logger.InfoContext(ctx, "item deleted",
		slog.String("item_id", itemID.String()),
		slog.Int("stock_rows", len(pairs)))
	return nil
}

// SetLocationStock creates or replaces the pair's stock row. A quantity below
// the peak number of concurrently active bookings from now on is refused.
func (uc *catalogCommandsImpl) SetLocationStock(ctx context.Context, itemID, locationID uuid.UUID, quantity int, dailyRateCents *int64) (*catalog.LocationStock, error) {
	if quantity < 0 {
		return nil, errs.NewValidationError("quantity", "cannot be negative")
	}

	var saved *catalog.LocationStock
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Catalog().ShareItem(ctx, itemID)
		if err != nil {
			return err
		}
		if _, err := tx.Catalog().FindLocation(ctx, locationID); err != nil {
			return err
		}

		rate := item.DefaultDailyRateCents()
		current, err := tx.Catalog().LockStock(ctx, itemID, locationID)
		switch {
		case err == nil:
			rate = current.DailyRateCents()
		case errs.Is(err, errs.ErrNotFound):
		default:
			return err
		}

		now := uc.clock.Now()
		if err := uc.ensureStockCovers(ctx, tx, itemID, locationID, quantity, now); err != nil {
			return err
		}

		st, err := catalog.NewLocationStock(itemID, locationID, quantity, patch.Coalesce(dailyRateCents, rate), now)
		if err != nil {
			return err
		}
		if err := tx.Catalog().SaveStock(ctx, st); err != nil {
			return err
		}
		saved = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.InvalidatePair(itemID, locationID)
	return saved, nil
}

func (uc *catalogCommandsImpl) RemoveLocationStock(ctx context.Context, itemID, locationID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Catalog().LockStock(ctx, itemID, locationID); err != nil {
			return err
		}
		if err := uc.ensureStockCovers(ctx, tx, itemID, locationID, 0, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Catalog().DeleteStock(ctx, itemID, locationID)
	})
	if err != nil {
		return err
	}

	uc.invalidator.InvalidatePair(itemID, locationID)
	return nil
}

func (uc *catalogCommandsImpl) ensureStockCovers(ctx context.Context, tx shared.Tx, itemID, locationID uuid.UUID, quantity int, now time.Time) error {
	windows, err := tx.Bookings().ActiveWindowsEndingAfter(ctx, itemID, locationID, now)
	if err != nil {
		return err
	}
	if peak := booking.PeakConcurrency(windows); quantity < peak {
		return &booking.CapacityConflictError{
			ItemID:     itemID,
			LocationID: locationID,
			Requested:  quantity,
			Peak:       peak,
		}
	}
	return nil
}

func (uc *catalogCommandsImpl) CreateLocation(ctx context.Context, req LocationRequest) (*catalog.Location, error) {
	loc, err := catalog.NewLocation(uuid.New(), catalog.LocationDetails(req), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateLocation(ctx, loc)
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (uc *catalogCommandsImpl) UpdateLocation(ctx context.Context, locationID uuid.UUID, req LocationRequest) (*catalog.Location, error) {
	var updated *catalog.Location
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Catalog().FindLocation(ctx, locationID)
		if err != nil {
			return err
		}
		if err := loc.Update(catalog.LocationDetails(req), uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Catalog().UpdateLocation(ctx, loc); err != nil {
			return err
		}
		updated = loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *catalogCommandsImpl) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Catalog().FindLocation(ctx, locationID); err != nil {
			return err
		}
		n, err := tx.Catalog().CountStockAtLocation(ctx, locationID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.NewConflictError("location", locationID.String(),
				fmt.Sprintf("still carries stock for %d items", n))
		}
		return tx.Catalog().DeleteLocation(ctx, locationID)
	})
}
