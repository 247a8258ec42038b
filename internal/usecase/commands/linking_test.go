//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkCall struct {
	qrID     uuid.UUID
	itemID   uuid.UUID
	sellerID uuid.UUID
	price    decimal.Decimal
}

// linkEnv is an open market with one seller holding two hangers, three fresh
// codes and one wardrobe item.
type linkEnv struct {
	market *market.Market
	seller uuid.UUID
	codes  []*qrcode.QRCode
	item   *item.Item
}

func newLinkEnv(t *testing.T, f *fixture) *linkEnv {
	t.Helper()
	m := f.openMarket(t, 3, 6)
	seller := f.racked(t, m.ID(), 2)
	return &linkEnv{
		market: m,
		seller: seller,
		codes:  f.mint(t, m.ID(), 3),
		item:   f.wardrobeItem(t, seller),
	}
}

func (e *linkEnv) call() linkCall {
	return linkCall{qrID: e.codes[0].ID(), itemID: e.item.ID(), sellerID: e.seller, price: price("12.50")}
}

func TestLinkQRCodeToItem(t *testing.T) {
	f := newFixture(t, nil)
	env := newLinkEnv(t, f)

	res, err := f.items.LinkQRCodeToItem(f.ctx(), env.codes[0].ID(), env.item.ID(), env.seller, price("12.50"))

	require.NoError(t, err)
	assert.Equal(t, qrcode.StatusLinked, res.QRCode.Status())
	assert.Equal(t, env.item.ID(), *res.QRCode.ItemID())
	assert.Equal(t, item.StatusRack, res.Item.Status())
	assert.Equal(t, env.market.ID(), *res.Item.MarketID())
	assert.True(t, price("12.50").Equal(*res.Item.SellingPrice()))

	q, err := f.quota.CanLink(f.ctx(), env.seller, env.market.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, q.Used)
}

func TestLinkQRCodeToItemPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(t *testing.T, f *fixture, env *linkEnv, c *linkCall)
		want    *errs.DomainError
	}{
		{
			name: "unknown code",
			arrange: func(_ *testing.T, _ *fixture, _ *linkEnv, c *linkCall) {
				c.qrID = uuid.New()
			},
			want: errs.ErrQRCodeNotFound,
		},
		{
			name: "market deleted under the batch",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, _ *linkCall) {
				_, err := f.markets.ChangeStatus(f.ctx(), staff, env.market.ID(), market.StatusCancelled)
				require.NoError(t, err)
				require.NoError(t, f.markets.DeleteMarket(f.ctx(), staff, env.market.ID()))
			},
			want: errs.ErrNoMarketAssociation,
		},
		{
			name: "market completed",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, _ *linkCall) {
				_, err := f.markets.ChangeStatus(f.ctx(), staff, env.market.ID(), market.StatusCompleted)
				require.NoError(t, err)
			},
			want: errs.ErrMarketNotOpen,
		},
		{
			name: "seller not enrolled",
			arrange: func(t *testing.T, f *fixture, _ *linkEnv, c *linkCall) {
				c.sellerID = f.activeSeller(t)
				c.itemID = f.wardrobeItem(t, c.sellerID).ID()
			},
			want: errs.ErrNotEnrolled,
		},
		{
			name: "enrolled without hangers",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, c *linkCall) {
				c.sellerID = f.activeSeller(t)
				_, err := f.enrollments.Register(f.ctx(), c.sellerID, env.market.ID())
				require.NoError(t, err)
				c.itemID = f.wardrobeItem(t, c.sellerID).ID()
			},
			want: errs.ErrNoHangerRental,
		},
		{
			name: "pending rental lapsed",
			arrange: func(_ *testing.T, f *fixture, _ *linkEnv, _ *linkCall) {
				f.clock.Add(f.policy.HangerPendingTTL)
			},
			want: errs.ErrNoHangerRental,
		},
		{
			name: "every hanger already used",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, c *linkCall) {
				f.listed(t, env.seller, env.codes[0])
				f.listed(t, env.seller, env.codes[1])
				c.qrID = env.codes[2].ID()
			},
			want: errs.ErrQuotaExceeded,
		},
		{
			name: "code already linked",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, _ *linkCall) {
				f.listed(t, env.seller, env.codes[0])
			},
			want: errs.ErrQRAlreadyUsed,
		},
		{
			name: "code invalidated",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, _ *linkCall) {
				_, err := f.qrcodes.InvalidateQRCode(f.ctx(), staff, env.codes[0].ID(), "label torn")
				require.NoError(t, err)
			},
			want: errs.ErrQRInvalidated,
		},
		{
			name: "unknown item",
			arrange: func(_ *testing.T, _ *fixture, _ *linkEnv, c *linkCall) {
				c.itemID = uuid.New()
			},
			want: errs.ErrItemNotFound,
		},
		{
			name: "item of another seller",
			arrange: func(t *testing.T, f *fixture, _ *linkEnv, c *linkCall) {
				c.itemID = f.wardrobeItem(t, uuid.New()).ID()
			},
			want: errs.ErrNotOwner,
		},
		{
			name: "item already on the rack",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, c *linkCall) {
				c.itemID = f.listed(t, env.seller, env.codes[1]).ID()
			},
			want: errs.ErrWrongItemStatus,
		},
		{
			name: "item still carries another code",
			arrange: func(t *testing.T, f *fixture, env *linkEnv, _ *linkCall) {
				stale := env.codes[1]
				require.NoError(t, stale.Link(env.item.ID(), t0))
				require.NoError(t, f.mem.QRCodes().Update(f.ctx(), stale, qrcode.StatusUnused))
			},
			want: errs.ErrAlreadyLinked,
		},
		{
			name: "zero price",
			arrange: func(_ *testing.T, _ *fixture, _ *linkEnv, c *linkCall) {
				c.price = decimal.Zero
			},
			want: errs.ErrInvalidPrice,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			env := newLinkEnv(t, f)
			c := env.call()
			tt.arrange(t, f, env, &c)

			_, err := f.items.LinkQRCodeToItem(f.ctx(), c.qrID, c.itemID, c.sellerID, c.price)

			requireCode(t, err, tt.want)
		})
	}
}

func TestLinkScannedCode(t *testing.T) {
	f := newFixture(t, nil)
	env := newLinkEnv(t, f)

	_, err := f.items.LinkScannedCode(f.ctx(), "spring 1 00001", env.item.ID(), env.seller, price("5"))
	requireCode(t, err, errs.ErrInvalidQRFormat)

	_, err = f.items.LinkScannedCode(f.ctx(), "SPRING-9-00001", env.item.ID(), env.seller, price("5"))
	requireCode(t, err, errs.ErrQRCodeNotFound)

	res, err := f.items.LinkScannedCode(f.ctx(), " SPRING-1-00002 ", env.item.ID(), env.seller, price("5"))
	require.NoError(t, err)
	assert.Equal(t, env.codes[1].ID(), res.QRCode.ID())

	// scanning the same label twice must not move anything
	again := f.wardrobeItem(t, env.seller)
	_, err = f.items.LinkScannedCode(f.ctx(), "SPRING-1-00002", again.ID(), env.seller, price("5"))
	requireCode(t, err, errs.ErrQRAlreadyUsed)
	stored, err := f.mem.Items().FindByID(f.ctx(), again.ID())
	require.NoError(t, err)
	assert.Equal(t, item.StatusWardrobe, stored.Status())
}

func TestRelinkAfterFillingQuotaReportsAlreadyUsed(t *testing.T) {
	f := newFixture(t, nil)
	env := newLinkEnv(t, f)
	c := env.call()

	_, err := f.items.LinkQRCodeToItem(f.ctx(), c.qrID, c.itemID, c.sellerID, c.price)
	require.NoError(t, err)
	f.listed(t, env.seller, env.codes[1])

	q, err := f.quota.CanLink(f.ctx(), env.seller, env.market.ID())
	require.NoError(t, err)
	require.False(t, q.Allowed, "both hangers are in use")

	_, err = f.items.LinkQRCodeToItem(f.ctx(), c.qrID, c.itemID, c.sellerID, c.price)
	requireCode(t, err, errs.ErrQRAlreadyUsed)

	stored, err := f.mem.QRCodes().FindByID(f.ctx(), c.qrID)
	require.NoError(t, err)
	assert.Equal(t, qrcode.StatusLinked, stored.Status())
	assert.Equal(t, c.itemID, *stored.ItemID())
}

func TestLinkRevertsCodeWhenItemWriteFails(t *testing.T) {
	itemsDown := errors.New("items table unavailable")
	var items *failingItems
	f := newFixture(t, func(s shared.Store) shared.Store {
		items = &failingItems{ItemStore: s.Items()}
		return storeWith{Store: s, items: items}
	})
	env := newLinkEnv(t, f)
	items.updateErr = itemsDown

	_, err := f.items.LinkQRCodeToItem(f.ctx(), env.codes[0].ID(), env.item.ID(), env.seller, price("12.50"))

	require.ErrorIs(t, err, itemsDown)
	qr, err := f.mem.QRCodes().FindByID(f.ctx(), env.codes[0].ID())
	require.NoError(t, err)
	assert.Equal(t, qrcode.StatusUnused, qr.Status())
	assert.Nil(t, qr.ItemID())
	it, err := f.mem.Items().FindByID(f.ctx(), env.item.ID())
	require.NoError(t, err)
	assert.Equal(t, item.StatusWardrobe, it.Status())
	assert.Contains(t, f.logs.String(), "compensated")
}

func TestLinkCompensationFailureIsFlagged(t *testing.T) {
	var (
		items *failingItems
		codes *flakyCodes
	)
	f := newFixture(t, func(s shared.Store) shared.Store {
		items = &failingItems{ItemStore: s.Items()}
		codes = &flakyCodes{QRCodeStore: s.QRCodes(), failFrom: -1}
		return storeWith{Store: s, items: items, codes: codes}
	})
	env := newLinkEnv(t, f)
	items.updateErr = errors.New("items table unavailable")
	codes.failFrom = 2 // the link write succeeds, the revert does not

	_, err := f.items.LinkQRCodeToItem(f.ctx(), env.codes[0].ID(), env.item.ID(), env.seller, price("12.50"))

	requireCode(t, err, errs.ErrCompensationFailed)
	assert.Equal(t, errs.KindCompensationFailed, errs.KindOf(err))
	logs := f.logs.String()
	assert.Contains(t, logs, "fault_class="+shared.FaultCompensationFailed)
	assert.Contains(t, logs, "manual_reconciliation=true")
	assert.Contains(t, logs, "operation=link_qr_code")
	qr, err := f.mem.QRCodes().FindByID(f.ctx(), env.codes[0].ID())
	require.NoError(t, err)
	assert.Equal(t, qrcode.StatusLinked, qr.Status())
}

func TestWithdrawItem(t *testing.T) {
	f := newFixture(t, nil)
	env := newLinkEnv(t, f)
	it := f.listed(t, env.seller, env.codes[0])

	_, err := f.items.WithdrawItem(f.ctx(), it.ID(), uuid.New())
	requireCode(t, err, errs.ErrNotOwner)

	withdrawn, err := f.items.WithdrawItem(f.ctx(), it.ID(), env.seller)
	require.NoError(t, err)
	assert.Equal(t, item.StatusWardrobe, withdrawn.Status())
	assert.Nil(t, withdrawn.MarketID())

	qr, err := f.mem.QRCodes().FindByID(f.ctx(), env.codes[0].ID())
	require.NoError(t, err)
	assert.Equal(t, qrcode.StatusInvalid, qr.Status())
	assert.Equal(t, qrcode.ReasonWithdrawn, qr.InvalidReason())

	_, err = f.items.WithdrawItem(f.ctx(), it.ID(), env.seller)
	requireCode(t, err, errs.ErrItemNotOnRack)

	// the freed hanger takes a new label
	_, err = f.items.LinkQRCodeToItem(f.ctx(), env.codes[1].ID(), it.ID(), env.seller, price("9"))
	require.NoError(t, err)
}

func TestWithdrawItemRefusedWhileHeld(t *testing.T) {
	f := newFixture(t, nil)
	env := newLinkEnv(t, f)
	it := f.listed(t, env.seller, env.codes[0])
	_, err := f.carts.AddToCart(f.ctx(), uuid.New(), it.ID())
	require.NoError(t, err)

	_, err = f.items.WithdrawItem(f.ctx(), it.ID(), env.seller)
	requireCode(t, err, errs.ErrItemReserved)

	f.clock.Add(f.policy.CartHoldWindow)
	_, err = f.items.WithdrawItem(f.ctx(), it.ID(), env.seller)
	require.NoError(t, err)
}

type failingItems struct {
	shared.ItemStore
	updateErr error
}

func (s *failingItems) Update(ctx context.Context, it *item.Item, expected item.Status) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	return s.ItemStore.Update(ctx, it, expected)
}

// flakyCodes fails every Update from the failFrom-th call on; negative never fails.
type flakyCodes struct {
	shared.QRCodeStore
	calls    atomic.Int32
	failFrom int32
}

func (s *flakyCodes) Update(ctx context.Context, q *qrcode.QRCode, expected qrcode.Status) error {
	n := s.calls.Add(1)
	if s.failFrom > 0 && n >= s.failFrom {
		return errors.New("qr_codes table unavailable")
	}
	return s.QRCodeStore.Update(ctx, q, expected)
}
