package queries

import (
	"context"
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type PoolView struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Available int `json:"available"`
}

type CapacityView struct {
	MarketID uuid.UUID `json:"market_id"`
	Vendors  PoolView  `json:"vendors"`
	Hangers  PoolView  `json:"hangers"`
}

func NewCapacityView(marketID uuid.UUID, c market.Capacity) *CapacityView {
	return &CapacityView{
		MarketID: marketID,
		Vendors:  PoolView(c.Vendors),
		Hangers:  PoolView(c.Hangers),
	}
}

type CapacityQueries interface {
	// GetMarketCapacity is recomputed from enrollments and rentals on every call.
	GetMarketCapacity(ctx context.Context, marketID uuid.UUID) (*CapacityView, error)
	// GetDisplayCapacity may be served from the short-TTL display cache.
	GetDisplayCapacity(ctx context.Context, marketID uuid.UUID) (*CapacityView, error)
	// Measure derives capacity for an already loaded market. Writers use this.
	Measure(ctx context.Context, m *market.Market) (market.Capacity, error)
}

type capacityQueriesImpl struct {
	store      shared.Store
	cache      shared.CapacityCache
	clock      clock.Clock
	pendingTTL time.Duration
}

func NewCapacityQueries(store shared.Store, cache shared.CapacityCache, clk clock.Clock, pendingTTL time.Duration) CapacityQueries {
	return &capacityQueriesImpl{store: store, cache: cache, clock: clk, pendingTTL: pendingTTL}
}

func (q *capacityQueriesImpl) GetMarketCapacity(ctx context.Context, marketID uuid.UUID) (*CapacityView, error) {
	m, err := q.store.Markets().FindByID(ctx, marketID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}
	c, err := q.Measure(ctx, m)
	if err != nil {
		return nil, err
	}
	return NewCapacityView(marketID, c), nil
}

func (q *capacityQueriesImpl) GetDisplayCapacity(ctx context.Context, marketID uuid.UUID) (*CapacityView, error) {
	if c, ok := q.cache.Get(ctx, marketID); ok {
		return NewCapacityView(marketID, c), nil
	}

	m, err := q.store.Markets().FindByID(ctx, marketID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}
	c, err := q.Measure(ctx, m)
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, marketID, c)
	return NewCapacityView(marketID, c), nil
}

func (q *capacityQueriesImpl) Measure(ctx context.Context, m *market.Market) (market.Capacity, error) {
	vendors, err := q.store.Enrollments().CountByMarket(ctx, m.ID())
	if err != nil {
		return market.Capacity{}, err
	}
	cutoff := q.clock.Now().Add(-q.pendingTTL)
	hangers, err := q.store.Rentals().SumActive(ctx, m.ID(), cutoff)
	if err != nil {
		return market.Capacity{}, err
	}
	return market.NewCapacity(m, vendors, hangers), nil
}
