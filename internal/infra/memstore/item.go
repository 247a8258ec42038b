package memstore

import (
	"context"
	"sort"
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/item"

	"github.com/google/uuid"
)

type itemStore struct{ s *Store }

func (r itemStore) Create(_ context.Context, it *item.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID()]; ok {
		return r.s.duplicate("item already exists")
	}
	r.s.items[it.ID()] = *it
	return nil
}

func (r itemStore) FindByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, r.s.notFound("item not found")
	}
	return &it, nil
}

func (r itemStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*item.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*item.Item, 0)
	for _, it := range r.s.items {
		if it.OwnerID() == ownerID {
			it := it
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

func (r itemStore) Update(_ context.Context, it *item.Item, expected item.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.items[it.ID()]
	if !ok {
		return r.s.notFound("item not found")
	}
	if cur.Status() != expected {
		return r.s.conflict("item status changed")
	}
	r.s.items[it.ID()] = *it
	return nil
}

func (r itemStore) CountOnRack(_ context.Context, ownerID, marketID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, it := range r.s.items {
		if it.OwnerID() == ownerID && it.Status() == item.StatusRack &&
			it.MarketID() != nil && *it.MarketID() == marketID {
			n++
		}
	}
	return n, nil
}

type cartStore struct{ s *Store }

func (r cartStore) Create(_ context.Context, res *cart.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.carts {
		if cur.ItemID() == res.ItemID() {
			return r.s.duplicate("item already reserved")
		}
	}
	r.s.carts[res.ID()] = *res
	return nil
}

func (r cartStore) FindByID(_ context.Context, id uuid.UUID) (*cart.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.carts[id]
	if !ok {
		return nil, r.s.notFound("cart reservation not found")
	}
	return &res, nil
}

func (r cartStore) FindByItem(_ context.Context, itemID uuid.UUID) (*cart.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.carts {
		if cur.ItemID() == itemID {
			return &cur, nil
		}
	}
	return nil, r.s.notFound("cart reservation not found")
}

func (r cartStore) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]*cart.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*cart.Reservation, 0)
	for _, cur := range r.s.carts {
		if cur.BuyerID() == buyerID {
			cur := cur
			out = append(out, &cur)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

func (r cartStore) Update(_ context.Context, res *cart.Reservation, expectedExpiry time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.carts[res.ID()]
	if !ok {
		return r.s.notFound("cart reservation not found")
	}
	if !cur.ExpiresAt().Equal(expectedExpiry) {
		return r.s.conflict("cart reservation changed")
	}
	r.s.carts[res.ID()] = *res
	return nil
}

func (r cartStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.carts[id]; !ok {
		return r.s.notFound("cart reservation not found")
	}
	delete(r.s.carts, id)
	return nil
}

func (r cartStore) DeleteIfExpired(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.carts[id]
	if !ok || !cur.IsExpired(now) {
		return false, nil
	}
	delete(r.s.carts, id)
	return true, nil
}

func (r cartStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, cur := range r.s.carts {
		if cur.IsExpired(now) {
			delete(r.s.carts, id)
			n++
		}
	}
	return n, nil
}
