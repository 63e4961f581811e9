package memstore

import (
	"context"
	"sort"

	"rental-engine/internal/domain/catalog"
	"rental-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type catalogRepo struct {
	tx *memTx
}

func (r *catalogRepo) CreateItem(_ context.Context, it *catalog.Item) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[it.ID()]; ok {
		return errs.NewConflictError("item", it.ID().String(), "already exists")
	}
	s.items[it.ID()] = *it
	id := it.ID()
	r.tx.record(func() { delete(s.items, id) })
	return nil
}

func (r *catalogRepo) UpdateItem(_ context.Context, it *catalog.Item) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[it.ID()]
	if !ok {
		return errs.NewNotFoundError("item", it.ID().String())
	}
	s.items[it.ID()] = *it
	r.tx.record(func() { s.items[prev.ID()] = prev })
	return nil
}

// DeleteItem cascades to the item's stock rows.
func (r *catalogRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[id]
	if !ok {
		return errs.NewNotFoundError("item", id.String())
	}
	delete(s.items, id)

	removed := make(map[pairKey]catalog.LocationStock)
	for k, st := range s.stock {
		if k.itemID == id {
			removed[k] = st
			delete(s.stock, k)
		}
	}

	r.tx.record(func() {
		s.items[id] = prev
		for k, st := range removed {
			s.stock[k] = st
		}
	})
	return nil
}

func (r *catalogRepo) FindItem(_ context.Context, id uuid.UUID) (*catalog.Item, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFoundError("item", id.String())
	}
	return &it, nil
}

func (r *catalogRepo) LockItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	if err := r.tx.lock(ctx, itemLockKey(id)); err != nil {
		return nil, err
	}
	return r.FindItem(ctx, id)
}

func (r *catalogRepo) ShareItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	if err := r.tx.rlock(ctx, itemLockKey(id)); err != nil {
		return nil, err
	}
	return r.FindItem(ctx, id)
}

func (r *catalogRepo) CreateLocation(_ context.Context, l *catalog.Location) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locations[l.ID()]; ok {
		return errs.NewConflictError("location", l.ID().String(), "already exists")
	}
	s.locations[l.ID()] = *l
	id := l.ID()
	r.tx.record(func() { delete(s.locations, id) })
	return nil
}

func (r *catalogRepo) UpdateLocation(_ context.Context, l *catalog.Location) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.locations[l.ID()]
	if !ok {
		return errs.NewNotFoundError("location", l.ID().String())
	}
	s.locations[l.ID()] = *l
	r.tx.record(func() { s.locations[prev.ID()] = prev })
	return nil
}

// DeleteLocation refuses while any item is stocked there.
func (r *catalogRepo) DeleteLocation(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.locations[id]
	if !ok {
		return errs.NewNotFoundError("location", id.String())
	}
	for k := range s.stock {
		if k.locationID == id {
			return errs.NewConflictError("location", id.String(), "still carries stock")
		}
	}
	delete(s.locations, id)
	r.tx.record(func() { s.locations[id] = prev })
	return nil
}

func (r *catalogRepo) FindLocation(_ context.Context, id uuid.UUID) (*catalog.Location, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.locations[id]
	if !ok {
		return nil, errs.NewNotFoundError("location", id.String())
	}
	return &l, nil
}

func (r *catalogRepo) CountStockAtLocation(_ context.Context, locationID uuid.UUID) (int, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for k := range s.stock {
		if k.locationID == locationID {
			n++
		}
	}
	return n, nil
}

func (r *catalogRepo) LockStock(ctx context.Context, itemID, locationID uuid.UUID) (*catalog.LocationStock, error) {
	key := pairKey{itemID: itemID, locationID: locationID}
	if err := r.tx.lock(ctx, key.lockKey()); err != nil {
		return nil, err
	}

	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stock[key]
	if !ok {
		return nil, errs.NewNotFoundError("location stock", itemID.String()+"@"+locationID.String())
	}
	return &st, nil
}

func (r *catalogRepo) LockItemStocks(ctx context.Context, itemID uuid.UUID) ([]*catalog.LocationStock, error) {
	s := r.tx.store
	s.mu.RLock()
	var keys []pairKey
	for k := range s.stock {
		if k.itemID == itemID {
			keys = append(keys, k)
		}
	}
	s.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].lockKey() < keys[j].lockKey()
	})

	stocks := make([]*catalog.LocationStock, 0, len(keys))
	for _, k := range keys {
		st, err := r.LockStock(ctx, k.itemID, k.locationID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		stocks = append(stocks, st)
	}
	return stocks, nil
}

// SaveStock inserts or replaces the stock row. Both sides of the pair must
// exist.
func (r *catalogRepo) SaveStock(_ context.Context, st *catalog.LocationStock) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[st.ItemID()]; !ok {
		return errs.NewNotFoundError("item", st.ItemID().String())
	}
	if _, ok := s.locations[st.LocationID()]; !ok {
		return errs.NewNotFoundError("location", st.LocationID().String())
	}

	key := pairKey{itemID: st.ItemID(), locationID: st.LocationID()}
	prev, existed := s.stock[key]
	s.stock[key] = *st
	r.tx.record(func() {
		if existed {
			s.stock[key] = prev
			return
		}
		delete(s.stock, key)
	})
	return nil
}

func (r *catalogRepo) DeleteStock(_ context.Context, itemID, locationID uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{itemID: itemID, locationID: locationID}
	prev, ok := s.stock[key]
	if !ok {
		return errs.NewNotFoundError("location stock", itemID.String()+"@"+locationID.String())
	}
	delete(s.stock, key)
	r.tx.record(func() { s.stock[key] = prev })
	return nil
}
