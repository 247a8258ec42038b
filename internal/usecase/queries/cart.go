package queries

import (
	"context"
	"time"

	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartItemView struct {
	ID           uuid.UUID        `json:"id"`
	ItemID       uuid.UUID        `json:"item_id"`
	Title        string           `json:"title"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	ExpiresAt    time.Time        `json:"expires_at"`
}

type CartQueries interface {
	// ListCart returns only holds that have not lapsed, whether or not the sweeper ran.
	ListCart(ctx context.Context, buyerID uuid.UUID) ([]*CartItemView, error)
}

type cartQueriesImpl struct {
	store shared.Store
	clock clock.Clock
}

func NewCartQueries(store shared.Store, clk clock.Clock) CartQueries {
	return &cartQueriesImpl{store: store, clock: clk}
}

func (q *cartQueriesImpl) ListCart(ctx context.Context, buyerID uuid.UUID) ([]*CartItemView, error) {
	rows, err := q.store.Carts().ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	views := make([]*CartItemView, 0, len(rows))
	for _, r := range rows {
		if r.IsExpired(now) {
			continue
		}
		v := &CartItemView{
			ID:        r.ID(),
			ItemID:    r.ItemID(),
			CreatedAt: r.CreatedAt(),
			ExpiresAt: r.ExpiresAt(),
		}
		it, err := q.store.Items().FindByID(ctx, r.ItemID())
		switch {
		case err == nil:
			v.Title = it.Title()
			v.SellingPrice = it.SellingPrice()
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
