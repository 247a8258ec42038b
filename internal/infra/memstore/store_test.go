//go:build unit

package memstore_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/infra"
	"preloved-market/internal/infra/memstore"
	"preloved-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 9, 10, 0, 0, 0, time.UTC)

func newStore() *memstore.Store {
	return memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMarketCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	m, err := builder.NewMarketBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, s.Markets().Create(ctx, m))
	assert.True(t, infra.IsKind(s.Markets().Create(ctx, m), infra.KindDuplicateKey))

	stale, err := s.Markets().FindByID(ctx, m.ID())
	require.NoError(t, err)

	require.NoError(t, m.ChangeStatus(market.StatusActive, t0))
	require.NoError(t, s.Markets().Update(ctx, m, market.StatusDraft))

	require.NoError(t, stale.ChangeStatus(market.StatusCancelled, t0))
	err = s.Markets().Update(ctx, stale, market.StatusDraft)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "a writer holding the old status must lose")

	got, err := s.Markets().FindByID(ctx, m.ID())
	require.NoError(t, err)
	assert.Equal(t, market.StatusActive, got.Status())

	require.NoError(t, s.Markets().Delete(ctx, m.ID()))
	_, err = s.Markets().FindByID(ctx, m.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	it := builder.NewItemBuilder().MustBuild()
	require.NoError(t, s.Items().Create(ctx, it))

	got, err := s.Items().FindByID(ctx, it.ID())
	require.NoError(t, err)
	require.NoError(t, got.PlaceOnRack(uuid.New(), decimal.NewFromInt(3), t0))

	again, err := s.Items().FindByID(ctx, it.ID())
	require.NoError(t, err)
	assert.Equal(t, item.StatusWardrobe, again.Status(), "unsaved changes must not leak into the store")
}

func TestEnrollmentSlots(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	marketID := uuid.New()

	const n = 20
	results := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.Enrollments().Create(ctx, enrollment.NewEnrollment(uuid.New(), marketID, 1, t0))
		}()
	}
	wg.Wait()

	won := 0
	for _, err := range results {
		if err == nil {
			won++
			continue
		}
		assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
	}
	assert.Equal(t, 1, won, "one row per slot")

	list, err := s.Enrollments().ListByMarket(ctx, marketID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	second := enrollment.NewEnrollment(uuid.New(), marketID, 2, t0.Add(time.Minute))
	require.NoError(t, s.Enrollments().Create(ctx, second))
	require.NoError(t, s.Enrollments().Create(ctx, enrollment.NewEnrollment(uuid.New(), uuid.New(), 1, t0)),
		"slots are scoped to their market")

	list, err = s.Enrollments().ListByMarket(ctx, marketID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID(), list[1].ID(), "listed in registration order")

	dup := enrollment.NewEnrollment(list[0].SellerID(), marketID, 3, t0)
	assert.True(t, infra.IsKind(s.Enrollments().Create(ctx, dup), infra.KindDuplicateKey))

	require.NoError(t, s.Enrollments().Delete(ctx, list[0].ID()))
	assert.NoError(t, s.Enrollments().Create(ctx, enrollment.NewEnrollment(uuid.New(), marketID, 1, t0)),
		"unregistering frees the slot")
}

func TestRentalSumAndExpiry(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	marketID := uuid.New()
	ttl := 24 * time.Hour

	confirmed, err := hanger.NewRental(uuid.New(), marketID, 3, t0)
	require.NoError(t, err)
	require.NoError(t, confirmed.Confirm(t0, ttl))
	fresh, err := hanger.NewRental(uuid.New(), marketID, 2, t0.Add(time.Hour))
	require.NoError(t, err)
	old, err := hanger.NewRental(uuid.New(), marketID, 4, t0)
	require.NoError(t, err)
	for _, r := range []*hanger.Rental{confirmed, fresh, old} {
		require.NoError(t, s.Rentals().Create(ctx, r))
	}

	dup, err := hanger.NewRental(fresh.SellerID(), marketID, 1, t0)
	require.NoError(t, err)
	assert.True(t, infra.IsKind(s.Rentals().Create(ctx, dup), infra.KindDuplicateKey), "one live rental per seller and market")

	now := t0.Add(ttl)
	sum, err := s.Rentals().SumActive(ctx, marketID, now.Add(-ttl))
	require.NoError(t, err)
	assert.Equal(t, 5, sum, "the pending rental created exactly at the cutoff has lapsed")

	n, err := s.Rentals().ExpirePending(ctx, now.Add(-ttl), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Rentals().FindByID(ctx, old.ID())
	require.NoError(t, err)
	assert.Equal(t, hanger.StatusExpired, got.Status())

	_, err = s.Rentals().FindCurrent(ctx, old.SellerID(), marketID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	again, err := hanger.NewRental(old.SellerID(), marketID, 1, now)
	require.NoError(t, err)
	assert.NoError(t, s.Rentals().Create(ctx, again), "an expired rental does not block a new one")
}

func TestCodesAreUniqueAcrossBatches(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	b1, err := qrcode.NewBatch(uuid.New(), "SPRING", 1, 2, t0)
	require.NoError(t, err)
	require.NoError(t, s.QRBatches().Create(ctx, b1))
	require.NoError(t, s.QRCodes().CreateMany(ctx, b1.Mint()))

	clash, err := qrcode.NewBatch(uuid.New(), "SPRING", 1, 5, t0)
	require.NoError(t, err)
	assert.True(t, infra.IsKind(s.QRBatches().Create(ctx, clash), infra.KindDuplicateKey))
	assert.True(t, infra.IsKind(s.QRCodes().CreateMany(ctx, clash.Mint()), infra.KindDuplicateKey))

	codes, err := s.QRCodes().ListByBatch(ctx, clash.ID())
	require.NoError(t, err)
	assert.Empty(t, codes, "a rejected batch writes nothing")

	n, err := s.QRBatches().CountByPrefix(ctx, "SPRING")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQRCodeLinkCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	b, err := qrcode.NewBatch(uuid.New(), "FALL", 1, 1, t0)
	require.NoError(t, err)
	require.NoError(t, s.QRCodes().CreateMany(ctx, b.Mint()))

	q, err := s.QRCodes().FindByCode(ctx, "FALL-1-00001")
	require.NoError(t, err)
	rival := *q

	itemID := uuid.New()
	require.NoError(t, q.Link(itemID, t0))
	require.NoError(t, s.QRCodes().Update(ctx, q, qrcode.StatusUnused))

	require.NoError(t, rival.Link(uuid.New(), t0))
	err = s.QRCodes().Update(ctx, &rival, qrcode.StatusUnused)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "the second scan of the same label must lose")

	linked, err := s.QRCodes().FindLinkedByItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, q.ID(), linked.ID())
}

func TestCartHolds(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	itemID := uuid.New()
	window := 15 * time.Minute

	hold := cart.NewReservation(uuid.New(), itemID, t0, window)
	require.NoError(t, s.Carts().Create(ctx, hold))
	rival := cart.NewReservation(uuid.New(), itemID, t0, window)
	assert.True(t, infra.IsKind(s.Carts().Create(ctx, rival), infra.KindDuplicateKey), "one hold per item")

	t.Run("extend is compare-and-set on the expiry", func(t *testing.T) {
		stale, err := s.Carts().FindByID(ctx, hold.ID())
		require.NoError(t, err)

		prev := hold.ExpiresAt()
		require.NoError(t, hold.Extend(t0.Add(5*time.Minute), window))
		require.NoError(t, s.Carts().Update(ctx, hold, prev))

		require.NoError(t, stale.Extend(t0.Add(6*time.Minute), window))
		assert.True(t, infra.IsKind(s.Carts().Update(ctx, stale, prev), infra.KindConflict))
	})

	t.Run("expired holds are removed once", func(t *testing.T) {
		deleted, err := s.Carts().DeleteIfExpired(ctx, hold.ID(), t0.Add(10*time.Minute))
		require.NoError(t, err)
		assert.False(t, deleted, "still live")

		expiry := hold.ExpiresAt()
		deleted, err = s.Carts().DeleteIfExpired(ctx, hold.ID(), expiry)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.Carts().DeleteIfExpired(ctx, hold.ID(), expiry)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("sweep", func(t *testing.T) {
		for range 3 {
			require.NoError(t, s.Carts().Create(ctx, cart.NewReservation(uuid.New(), uuid.New(), t0, window)))
		}
		require.NoError(t, s.Carts().Create(ctx, cart.NewReservation(uuid.New(), uuid.New(), t0.Add(time.Hour), window)))

		n, err := s.Carts().DeleteExpired(ctx, t0.Add(window))
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}
