//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentHangers(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		arrange func(t *testing.T, f *fixture) (sellerID, marketID uuid.UUID)
		want    *errs.DomainError
	}{
		{
			name:  "non-positive count",
			count: 0,
			arrange: func(t *testing.T, f *fixture) (uuid.UUID, uuid.UUID) {
				return f.activeSeller(t), f.openMarket(t, 2, 4).ID()
			},
			want: errs.ErrInvalidHangerQty,
		},
		{
			name:  "seller not enrolled",
			count: 1,
			arrange: func(t *testing.T, f *fixture) (uuid.UUID, uuid.UUID) {
				return f.activeSeller(t), f.openMarket(t, 2, 4).ID()
			},
			want: errs.ErrNotEnrolled,
		},
		{
			name:  "more hangers than the market has left",
			count: 3,
			arrange: func(t *testing.T, f *fixture) (uuid.UUID, uuid.UUID) {
				m := f.openMarket(t, 2, 4)
				f.racked(t, m.ID(), 2)
				sellerID := f.activeSeller(t)
				_, err := f.enrollments.Register(f.ctx(), sellerID, m.ID())
				require.NoError(t, err)
				return sellerID, m.ID()
			},
			want: errs.ErrInsufficientHangers,
		},
		{
			name:  "live rental already held",
			count: 1,
			arrange: func(t *testing.T, f *fixture) (uuid.UUID, uuid.UUID) {
				m := f.openMarket(t, 2, 4)
				return f.racked(t, m.ID(), 1), m.ID()
			},
			want: errs.ErrRentalExists,
		},
		{
			name:  "market closed",
			count: 1,
			arrange: func(t *testing.T, f *fixture) (uuid.UUID, uuid.UUID) {
				m := f.openMarket(t, 2, 4)
				sellerID := f.activeSeller(t)
				_, err := f.enrollments.Register(f.ctx(), sellerID, m.ID())
				require.NoError(t, err)
				_, err = f.markets.ChangeStatus(f.ctx(), staff, m.ID(), market.StatusCompleted)
				require.NoError(t, err)
				return sellerID, m.ID()
			},
			want: errs.ErrMarketNotOpen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			sellerID, marketID := tt.arrange(t, f)

			_, err := f.hangers.RentHangers(f.ctx(), sellerID, marketID, tt.count)

			requireCode(t, err, tt.want)
		})
	}

	t.Run("a lapsed pending rental frees its hangers and the pair", func(t *testing.T) {
		f := newFixture(t, nil)
		m := f.openMarket(t, 2, 4)
		sellerID := f.racked(t, m.ID(), 3)

		f.clock.Add(f.policy.HangerPendingTTL + time.Minute)
		r, err := f.hangers.RentHangers(f.ctx(), sellerID, m.ID(), 4)

		require.NoError(t, err)
		assert.Equal(t, hanger.StatusPending, r.Status())
		rentals, err := f.mem.Rentals().ListByMarket(f.ctx(), m.ID())
		require.NoError(t, err)
		statuses := map[hanger.Status]int{}
		for _, r := range rentals {
			statuses[r.Status()]++
		}
		assert.Equal(t, map[hanger.Status]int{hanger.StatusExpired: 1, hanger.StatusPending: 1}, statuses)
	})
}

func TestConfirmRental(t *testing.T) {
	f := newFixture(t, nil)
	m := f.openMarket(t, 3, 6)
	sellerID := f.racked(t, m.ID(), 2)
	r, err := f.mem.Rentals().FindCurrent(f.ctx(), sellerID, m.ID())
	require.NoError(t, err)

	_, err = f.hangers.ConfirmRental(f.ctx(), user.Actor{ID: sellerID, Role: user.RoleSeller}, r.ID())
	requireCode(t, err, errs.ErrNotAuthorized)

	confirmed, err := f.hangers.ConfirmRental(f.ctx(), staff, r.ID())
	require.NoError(t, err)
	assert.Equal(t, hanger.StatusConfirmed, confirmed.Status())

	// confirmed rentals never lapse
	f.clock.Add(2 * f.policy.HangerPendingTTL)
	q, err := f.quota.CanLink(f.ctx(), sellerID, m.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, q.Quota)

	_, err = f.hangers.ConfirmRental(f.ctx(), staff, uuid.New())
	requireCode(t, err, errs.ErrRentalNotFound)

	t.Run("lapsed rental cannot be confirmed", func(t *testing.T) {
		f := newFixture(t, nil)
		m := f.openMarket(t, 3, 6)
		sellerID := f.racked(t, m.ID(), 2)
		r, err := f.mem.Rentals().FindCurrent(f.ctx(), sellerID, m.ID())
		require.NoError(t, err)

		f.clock.Add(f.policy.HangerPendingTTL)
		_, err = f.hangers.ConfirmRental(f.ctx(), staff, r.ID())

		requireCode(t, err, errs.ErrRentalLapsed)
	})
}

func TestCancelRental(t *testing.T) {
	f := newFixture(t, nil)
	m := f.openMarket(t, 3, 6)
	sellerID := f.racked(t, m.ID(), 2)
	r, err := f.mem.Rentals().FindCurrent(f.ctx(), sellerID, m.ID())
	require.NoError(t, err)
	seller := user.Actor{ID: sellerID, Role: user.RoleSeller}

	err = f.hangers.CancelRental(f.ctx(), user.Actor{ID: uuid.New(), Role: user.RoleSeller}, r.ID())
	requireCode(t, err, errs.ErrNotAuthorized)

	it := f.listed(t, sellerID, f.mint(t, m.ID(), 1)[0])
	err = f.hangers.CancelRental(f.ctx(), seller, r.ID())
	requireCode(t, err, errs.ErrItemsOnRack)

	_, err = f.items.WithdrawItem(f.ctx(), it.ID(), sellerID)
	require.NoError(t, err)
	require.NoError(t, f.hangers.CancelRental(f.ctx(), seller, r.ID()))

	c, err := f.capacity.GetMarketCapacity(f.ctx(), m.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Hangers.Current)

	err = f.hangers.CancelRental(f.ctx(), seller, r.ID())
	requireCode(t, err, errs.ErrInvalidTransition)
}

func TestRentHangersConcurrentNeverOverbooks(t *testing.T) {
	const (
		sellers    = 3
		maxHangers = 4
	)
	arrived := &sync.WaitGroup{}
	arrived.Add(sellers)
	f := newFixture(t, func(s shared.Store) shared.Store {
		return storeWith{Store: s, rentals: barrierRentals{HangerRentalStore: s.Rentals(), arrived: arrived}}
	})
	m := f.openMarket(t, sellers, maxHangers)
	ids := make([]uuid.UUID, sellers)
	for i := range ids {
		ids[i] = f.activeSeller(t)
		_, err := f.enrollments.Register(f.ctx(), ids[i], m.ID())
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := f.hangers.RentHangers(f.ctx(), id, m.ID(), 2)
			if err != nil {
				assert.Equal(t, errs.KindCapacityExceeded, errs.KindOf(err), "error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	c, err := f.capacity.GetMarketCapacity(f.ctx(), m.ID())
	require.NoError(t, err)
	assert.LessOrEqual(t, c.Hangers.Current, maxHangers)
}

type barrierRentals struct {
	shared.HangerRentalStore
	arrived *sync.WaitGroup
}

func (b barrierRentals) Create(ctx context.Context, r *hanger.Rental) error {
	b.arrived.Done()
	b.arrived.Wait()
	return b.HangerRentalStore.Create(ctx, r)
}
