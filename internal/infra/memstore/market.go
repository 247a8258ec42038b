package memstore

import (
	"context"
	"sort"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/seller"

	"github.com/google/uuid"
)

type marketStore struct{ s *Store }

func (r marketStore) Create(_ context.Context, m *market.Market) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.markets[m.ID()]; ok {
		return r.s.duplicate("market already exists")
	}
	r.s.markets[m.ID()] = *m
	return nil
}

func (r marketStore) FindByID(_ context.Context, id uuid.UUID) (*market.Market, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.markets[id]
	if !ok {
		return nil, r.s.notFound("market not found")
	}
	return &m, nil
}

func (r marketStore) List(_ context.Context) ([]*market.Market, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*market.Market, 0, len(r.s.markets))
	for _, m := range r.s.markets {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt().Before(out[j].StartsAt()) })
	return out, nil
}

func (r marketStore) Update(_ context.Context, m *market.Market, expected market.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.markets[m.ID()]
	if !ok {
		return r.s.notFound("market not found")
	}
	if cur.Status() != expected {
		return r.s.conflict("market status changed")
	}
	r.s.markets[m.ID()] = *m
	return nil
}

func (r marketStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.markets[id]; !ok {
		return r.s.notFound("market not found")
	}
	delete(r.s.markets, id)
	return nil
}

type sellerStore struct{ s *Store }

func (r sellerStore) FindByID(_ context.Context, id uuid.UUID) (*seller.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.sellers[id]
	if !ok {
		return nil, r.s.notFound("seller profile not found")
	}
	return &p, nil
}

func (r sellerStore) Save(_ context.Context, p *seller.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sellers[p.ID()] = *p
	return nil
}
