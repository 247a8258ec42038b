package queries

import (
	"context"
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type MarketView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	MaxVendors int       `json:"max_vendors"`
	MaxHangers int       `json:"max_hangers"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewMarketView(m *market.Market) *MarketView {
	return &MarketView{
		ID:         m.ID(),
		Name:       m.Name(),
		Status:     m.Status().String(),
		MaxVendors: m.MaxVendors(),
		MaxHangers: m.MaxHangers(),
		StartsAt:   m.StartsAt(),
		EndsAt:     m.EndsAt(),
		CreatedAt:  m.CreatedAt(),
		UpdatedAt:  m.UpdatedAt(),
	}
}

type MarketQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MarketView, error)
	List(ctx context.Context) ([]*MarketView, error)
}

type marketQueriesImpl struct {
	store shared.Store
}

func NewMarketQueries(store shared.Store) MarketQueries {
	return &marketQueriesImpl{store: store}
}

func (q *marketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MarketView, error) {
	m, err := q.store.Markets().FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}
	return NewMarketView(m), nil
}

func (q *marketQueriesImpl) List(ctx context.Context) ([]*MarketView, error) {
	rows, err := q.store.Markets().List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*MarketView, 0, len(rows))
	for _, m := range rows {
		views = append(views, NewMarketView(m))
	}
	return views, nil
}
