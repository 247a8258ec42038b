//go:build unit

package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/infra/memstore"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newSweeper(store shared.Store, clk clock.Clock) *Sweeper {
	cfg := config.NewTestConfig()
	cfg.Sweeper.Interval = 10 * time.Millisecond
	return NewSweeper(store, clk, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	clk := clock.NewMockClock(t0)

	live := cart.NewReservation(uuid.New(), uuid.New(), t0, 30*time.Minute)
	lapsed := cart.NewReservation(uuid.New(), uuid.New(), t0, 5*time.Minute)
	require.NoError(t, store.Carts().Create(ctx, live))
	require.NoError(t, store.Carts().Create(ctx, lapsed))

	stale, err := hanger.NewRental(uuid.New(), uuid.New(), 2, t0.Add(-25*time.Hour))
	require.NoError(t, err)
	fresh, err := hanger.NewRental(uuid.New(), uuid.New(), 2, t0.Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.Rentals().Create(ctx, stale))
	require.NoError(t, store.Rentals().Create(ctx, fresh))

	clk.Add(10 * time.Minute)
	res, err := newSweeper(store, clk).RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, SweepResult{CartHolds: 1, HangerRentals: 1}, res)

	_, err = store.Carts().FindByID(ctx, live.ID())
	assert.NoError(t, err)
	got, err := store.Rentals().FindByID(ctx, stale.ID())
	require.NoError(t, err)
	assert.Equal(t, hanger.StatusExpired, got.Status())
	got, err = store.Rentals().FindByID(ctx, fresh.ID())
	require.NoError(t, err)
	assert.Equal(t, hanger.StatusPending, got.Status())
}

type failingCarts struct {
	shared.CartStore
}

func (failingCarts) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, errors.New("connection refused")
}

type cartFailStore struct {
	shared.Store
}

func (s cartFailStore) Carts() shared.CartStore { return failingCarts{s.Store.Carts()} }

func TestSweeper_RentalPassRunsWhenCartPassFails(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	stale, err := hanger.NewRental(uuid.New(), uuid.New(), 1, t0.Add(-48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.Rentals().Create(ctx, stale))

	res, err := newSweeper(cartFailStore{store}, clock.NewMockClock(t0)).RunOnce(ctx)

	assert.Error(t, err)
	assert.Equal(t, 1, res.HangerRentals)
}

func TestSweeper_StartStop(t *testing.T) {
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	lapsed := cart.NewReservation(uuid.New(), uuid.New(), t0, time.Minute)
	require.NoError(t, store.Carts().Create(context.Background(), lapsed))

	s := newSweeper(store, clock.NewMockClock(t0.Add(time.Hour)))
	s.Start()

	assert.Eventually(t, func() bool {
		_, err := store.Carts().FindByID(context.Background(), lapsed.ID())
		return err != nil
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
