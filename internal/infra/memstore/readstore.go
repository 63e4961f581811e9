package memstore

import (
	"context"
	"sort"

	"rental-engine/internal/domain/booking"
	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves the query side straight from the store maps without
// taking allocation locks.
type ReadStore struct {
	store *Store
}

func NewReadStore(store *Store) *ReadStore {
	return &ReadStore{store: store}
}

func (r *ReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, errs.NewNotFoundError("booking", id.String())
	}
	return s.bookingView(&b), nil
}

func (r *ReadStore) List(_ context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if filter.RenterID != nil && b.RenterID() != *filter.RenterID {
			continue
		}
		if filter.Status != nil && b.Status().String() != *filter.Status {
			continue
		}
		matched = append(matched, b)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if pa, pb := a.Status().Priority(), b.Status().Priority(); pa != pb {
			return pa < pb
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})

	views := make([]*queries.BookingView, 0, filter.Limit)
	for i := filter.Offset; i < len(matched); i++ {
		if filter.Limit > 0 && len(views) == filter.Limit {
			break
		}
		views = append(views, s.bookingView(&matched[i]))
	}
	return views, nil
}

func (r *ReadStore) FindItem(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFoundError("item", id.String())
	}
	return itemView(&it), nil
}

func (r *ReadStore) ListItems(_ context.Context, limit, offset int) ([]*queries.ItemView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]catalog.Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name() != items[j].Name() {
			return items[i].Name() < items[j].Name()
		}
		return items[i].ID().String() < items[j].ID().String()
	})

	views := make([]*queries.ItemView, 0, limit)
	for i := offset; i < len(items); i++ {
		if limit > 0 && len(views) == limit {
			break
		}
		views = append(views, itemView(&items[i]))
	}
	return views, nil
}

func (r *ReadStore) ListItemStocks(_ context.Context, itemID uuid.UUID) ([]*queries.StockView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var views []*queries.StockView
	for k, st := range s.stock {
		if k.itemID == itemID {
			views = append(views, s.stockView(&st))
		}
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].LocationName != views[j].LocationName {
			return views[i].LocationName < views[j].LocationName
		}
		return views[i].LocationID.String() < views[j].LocationID.String()
	})
	return views, nil
}

func (r *ReadStore) FindLocation(_ context.Context, id uuid.UUID) (*queries.LocationView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.locations[id]
	if !ok {
		return nil, errs.NewNotFoundError("location", id.String())
	}
	return locationView(&l), nil
}

func (r *ReadStore) ListLocations(_ context.Context) ([]*queries.LocationView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.LocationView, 0, len(s.locations))
	for _, l := range s.locations {
		views = append(views, locationView(&l))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Name != views[j].Name {
			return views[i].Name < views[j].Name
		}
		return views[i].ID.String() < views[j].ID.String()
	})
	return views, nil
}

func (r *ReadStore) FindStock(_ context.Context, itemID, locationID uuid.UUID) (*queries.StockView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stock[pairKey{itemID: itemID, locationID: locationID}]
	if !ok {
		return nil, errs.NewNotFoundError("location stock", itemID.String()+"@"+locationID.String())
	}
	return s.stockView(&st), nil
}

func (r *ReadStore) CountOverlapping(_ context.Context, itemID, locationID uuid.UUID, w booking.Window) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countOverlapping(itemID, locationID, w, uuid.Nil), nil
}

// bookingView requires s.mu to be held.
func (s *Store) bookingView(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:                   b.ID(),
		RenterID:             b.RenterID(),
		ItemID:               b.ItemID(),
		LocationID:           b.LocationID(),
		PickupAt:             b.Window().Pickup(),
		ReturnAt:             b.Window().Return(),
		Status:               b.Status().String(),
		RateCents:            b.Rate().Cents(),
		TotalCents:           b.Total().Cents(),
		CancellationDeadline: b.CancellationDeadline(),
		CreatedAt:            b.CreatedAt(),
		UpdatedAt:            b.UpdatedAt(),
	}
	if it, ok := s.items[b.ItemID()]; ok {
		view.ItemName = it.Name()
	}
	if l, ok := s.locations[b.LocationID()]; ok {
		view.LocationName = l.Name()
	}
	return view
}

func (s *Store) stockView(st *catalog.LocationStock) *queries.StockView {
	view := &queries.StockView{
		ItemID:         st.ItemID(),
		LocationID:     st.LocationID(),
		Quantity:       st.Quantity(),
		DailyRateCents: st.DailyRateCents(),
		UpdatedAt:      st.UpdatedAt(),
	}
	if l, ok := s.locations[st.LocationID()]; ok {
		view.LocationName = l.Name()
	}
	return view
}

func itemView(it *catalog.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:                    it.ID(),
		Name:                  it.Name(),
		Description:           it.Description(),
		DefaultDailyRateCents: it.DefaultDailyRateCents(),
		CreatedAt:             it.CreatedAt(),
		UpdatedAt:             it.UpdatedAt(),
	}
}

func locationView(l *catalog.Location) *queries.LocationView {
	return &queries.LocationView{
		ID:           l.ID(),
		Name:         l.Name(),
		Address:      l.Address(),
		ContactInfo:  l.ContactInfo(),
		WorkingHours: l.WorkingHours(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}
