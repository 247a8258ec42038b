package queries

import (
	"context"
	"time"

	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuotaView struct {
	Allowed bool `json:"allowed"`
	Used    int  `json:"used"`
	Quota   int  `json:"quota"`
}

// QuotaQueries answers the advisory "may this seller rack another item" question.
// The linking workflow asks again right before it commits.
type QuotaQueries interface {
	CanLink(ctx context.Context, sellerID, marketID uuid.UUID) (*QuotaView, error)
}

type quotaQueriesImpl struct {
	store      shared.Store
	clock      clock.Clock
	pendingTTL time.Duration
}

func NewQuotaQueries(store shared.Store, clk clock.Clock, pendingTTL time.Duration) QuotaQueries {
	return &quotaQueriesImpl{store: store, clock: clk, pendingTTL: pendingTTL}
}

func (q *quotaQueriesImpl) CanLink(ctx context.Context, sellerID, marketID uuid.UUID) (*QuotaView, error) {
	quota := 0
	rental, err := q.store.Rentals().FindCurrent(ctx, sellerID, marketID)
	switch {
	case err == nil:
		if rental.IsActive(q.clock.Now(), q.pendingTTL) {
			quota = rental.HangerCount()
		}
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return nil, err
	}

	used, err := q.store.Items().CountOnRack(ctx, sellerID, marketID)
	if err != nil {
		return nil, err
	}

	return &QuotaView{Allowed: used < quota, Used: used, Quota: quota}, nil
}
