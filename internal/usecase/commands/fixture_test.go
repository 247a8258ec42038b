//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/infra/cache"
	"preloved-market/internal/infra/memstore"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/commands"
	"preloved-market/internal/usecase/queries"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 9, 10, 0, 0, 0, time.UTC)

type fixture struct {
	mem    *memstore.Store
	store  shared.Store
	clock  *clock.MockClock
	policy commands.Policy
	logs   *bytes.Buffer

	capacity queries.CapacityQueries
	quota    queries.QuotaQueries

	markets     commands.MarketCommands
	sellers     commands.SellerCommands
	enrollments commands.EnrollmentCommands
	hangers     commands.HangerCommands
	qrcodes     commands.QRCodeCommands
	items       commands.ItemCommands
	carts       commands.CartCommands
}

var staff = user.Actor{ID: uuid.New(), Role: user.RoleOperator}

// newFixture wires every use case over a fresh memstore. wrap, when given, decorates
// the store the use cases see so a test can inject faults or pauses.
func newFixture(t *testing.T, wrap func(shared.Store) shared.Store) *fixture {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mem := memstore.New(logger)
	var store shared.Store = mem
	if wrap != nil {
		store = wrap(mem)
	}

	f := &fixture{
		mem:    mem,
		store:  store,
		clock:  clock.NewMockClock(t0),
		policy: commands.DefaultPolicy(),
		logs:   logs,
	}
	noop := cache.NewNoop()
	f.capacity = queries.NewCapacityQueries(store, noop, f.clock, f.policy.HangerPendingTTL)
	f.quota = queries.NewQuotaQueries(store, f.clock, f.policy.HangerPendingTTL)

	f.markets = commands.NewMarketUseCase(store, f.capacity, noop, f.clock, f.policy, logger)
	f.sellers = commands.NewSellerUseCase(store, logger)
	f.enrollments = commands.NewEnrollmentUseCase(store, f.capacity, noop, f.clock, logger)
	f.hangers = commands.NewHangerUseCase(store, f.capacity, noop, f.clock, f.policy, logger)
	f.qrcodes = commands.NewQRCodeUseCase(store, f.clock, logger)
	f.items = commands.NewItemUseCase(store, f.quota, f.clock, f.policy, logger)
	f.carts = commands.NewCartUseCase(store, f.clock, f.policy, logger)
	return f
}

func (f *fixture) ctx() context.Context { return context.Background() }

func (f *fixture) openMarket(t *testing.T, maxVendors, maxHangers int) *market.Market {
	t.Helper()
	m, err := f.markets.CreateMarket(f.ctx(), staff, createInput(maxVendors, maxHangers))
	require.NoError(t, err)
	m, err = f.markets.ChangeStatus(f.ctx(), staff, m.ID(), market.StatusActive)
	require.NoError(t, err)
	return m
}

func (f *fixture) activeSeller(t *testing.T) uuid.UUID {
	t.Helper()
	id := uuid.New()
	f.activate(t, id)
	return id
}

func (f *fixture) activate(t *testing.T, sellerID uuid.UUID) {
	t.Helper()
	_, err := f.sellers.SyncProfile(f.ctx(), staff, sellerID, syncInput(true, true))
	require.NoError(t, err)
}

// racked returns a seller enrolled at the market with a live rental of the given size.
func (f *fixture) racked(t *testing.T, marketID uuid.UUID, hangers int) uuid.UUID {
	t.Helper()
	sellerID := f.activeSeller(t)
	_, err := f.enrollments.Register(f.ctx(), sellerID, marketID)
	require.NoError(t, err)
	_, err = f.hangers.RentHangers(f.ctx(), sellerID, marketID, hangers)
	require.NoError(t, err)
	return sellerID
}

func (f *fixture) mint(t *testing.T, marketID uuid.UUID, size int) []*qrcode.QRCode {
	t.Helper()
	res, err := f.qrcodes.MintBatch(f.ctx(), staff, marketID, "spring", size)
	require.NoError(t, err)
	return res.Codes
}

func (f *fixture) wardrobeItem(t *testing.T, ownerID uuid.UUID) *item.Item {
	t.Helper()
	it, err := f.items.CreateItem(f.ctx(), ownerID, "Wool coat")
	require.NoError(t, err)
	return it
}

// listed puts a fresh item of the seller on the rack and returns it.
func (f *fixture) listed(t *testing.T, sellerID uuid.UUID, code *qrcode.QRCode) *item.Item {
	t.Helper()
	it := f.wardrobeItem(t, sellerID)
	res, err := f.items.LinkQRCodeToItem(f.ctx(), code.ID(), it.ID(), sellerID, price("12.50"))
	require.NoError(t, err)
	return res.Item
}

func createInput(maxVendors, maxHangers int) commands.CreateMarketInput {
	return commands.CreateMarketInput{
		Name:       "Autumn Swap",
		MaxVendors: maxVendors,
		MaxHangers: &maxHangers,
		StartsAt:   t0.Add(24 * time.Hour),
		EndsAt:     t0.Add(32 * time.Hour),
	}
}

func syncInput(identity, payout bool) commands.SyncProfileInput {
	return commands.SyncProfileInput{DisplayName: "Closet", IdentityVerified: identity, PayoutVerified: payout}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireCode(t *testing.T, err error, want *errs.DomainError) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want.Code, errs.CodeOf(err), "error: %v", err)
}

// storeWith swaps selected sub-stores of the wrapped store.
type storeWith struct {
	shared.Store
	enrollments shared.EnrollmentStore
	rentals     shared.HangerRentalStore
	items       shared.ItemStore
	codes       shared.QRCodeStore
	batches     shared.QRBatchStore
}

func (s storeWith) Enrollments() shared.EnrollmentStore {
	if s.enrollments != nil {
		return s.enrollments
	}
	return s.Store.Enrollments()
}

func (s storeWith) Rentals() shared.HangerRentalStore {
	if s.rentals != nil {
		return s.rentals
	}
	return s.Store.Rentals()
}

func (s storeWith) Items() shared.ItemStore {
	if s.items != nil {
		return s.items
	}
	return s.Store.Items()
}

func (s storeWith) QRCodes() shared.QRCodeStore {
	if s.codes != nil {
		return s.codes
	}
	return s.Store.QRCodes()
}

func (s storeWith) QRBatches() shared.QRBatchStore {
	if s.batches != nil {
		return s.batches
	}
	return s.Store.QRBatches()
}
