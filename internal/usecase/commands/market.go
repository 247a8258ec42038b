package commands

import (
	"context"
	"log/slog"
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/patch"
	"preloved-market/internal/usecase/queries"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const opResize = "resize_market"

type CreateMarketInput struct {
	Name       string
	MaxVendors int
	MaxHangers *int
	StartsAt   time.Time
	EndsAt     time.Time
}

type UpdateCapacityInput struct {
	MaxVendors *int
	MaxHangers *int
}

type MarketCommands interface {
	CreateMarket(ctx context.Context, actor user.Actor, in CreateMarketInput) (*market.Market, error)
	UpdateCapacity(ctx context.Context, actor user.Actor, marketID uuid.UUID, in UpdateCapacityInput) (*market.Market, error)
	ChangeStatus(ctx context.Context, actor user.Actor, marketID uuid.UUID, to market.Status) (*market.Market, error)
	DeleteMarket(ctx context.Context, actor user.Actor, marketID uuid.UUID) error
}

type marketUseCaseImpl struct {
	store    shared.Store
	capacity queries.CapacityQueries
	cache    shared.CapacityCache
	clock    clock.Clock
	policy   Policy
	logger   *slog.Logger
}

func NewMarketUseCase(
	store shared.Store,
	capacity queries.CapacityQueries,
	cache shared.CapacityCache,
	clk clock.Clock,
	policy Policy,
	logger *slog.Logger,
) MarketCommands {
	return &marketUseCaseImpl{store: store, capacity: capacity, cache: cache, clock: clk, policy: policy, logger: logger}
}

func (uc *marketUseCaseImpl) CreateMarket(ctx context.Context, actor user.Actor, in CreateMarketInput) (*market.Market, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	m, err := market.NewMarket(in.Name, in.MaxVendors, in.MaxHangers, uc.policy.DefaultHangersPerVendor, in.StartsAt, in.EndsAt, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.store.Markets().Create(ctx, m); err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "market created",
		slog.String("market_id", m.ID().String()),
		slog.Int("max_vendors", m.MaxVendors()),
		slog.Int("max_hangers", m.MaxHangers()))
	return m, nil
}

type limits struct {
	vendors int
	hangers int
}

func (uc *marketUseCaseImpl) UpdateCapacity(ctx context.Context, actor user.Actor, marketID uuid.UUID, in UpdateCapacityInput) (*market.Market, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	var m *market.Market
	_, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[limits]{
		Operation: opResize,
		Checks: []func(context.Context) error{
			func(ctx context.Context) error {
				var err error
				m, err = uc.store.Markets().FindByID(ctx, marketID)
				return shared.NotFoundAs(err, errs.ErrMarketNotFound)
			},
		},
		Commit: func(ctx context.Context) (limits, error) {
			old := limits{vendors: m.MaxVendors(), hangers: m.MaxHangers()}
			usage, err := uc.capacity.Measure(ctx, m)
			if err != nil {
				return old, err
			}
			vendors := patch.Coalesce(in.MaxVendors, m.MaxVendors())
			hangers := patch.Coalesce(in.MaxHangers, m.MaxHangers())
			if err := m.Resize(vendors, hangers, usage, uc.clock.Now()); err != nil {
				return old, err
			}
			if err := uc.store.Markets().Update(ctx, m, m.Status()); err != nil {
				return old, shared.ConflictAs(err, errs.ErrInvalidTransition)
			}
			return old, nil
		},
		// Registrations and rentals racing the resize may have consumed more than the new limits.
		Confirm: func(ctx context.Context, _ limits) error {
			usage, err := uc.capacity.Measure(ctx, m)
			if err != nil {
				return err
			}
			if usage.Vendors.Current > m.MaxVendors() || usage.Hangers.Current > m.MaxHangers() {
				return errs.WithDetailf(errs.ErrCapacityBelowUsage, "%s", describe(usage))
			}
			return nil
		},
		Compensate: func(ctx context.Context, old limits) error {
			restored := market.ReconstructMarket(m.ID(), m.Name(), m.Status(), old.vendors, old.hangers,
				m.StartsAt(), m.EndsAt(), m.CreatedAt(), uc.clock.Now())
			return uc.store.Markets().Update(ctx, restored, m.Status())
		},
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, marketID)
	return m, nil
}

func (uc *marketUseCaseImpl) ChangeStatus(ctx context.Context, actor user.Actor, marketID uuid.UUID, to market.Status) (*market.Market, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if !to.IsValid() {
		return nil, errs.WithDetailf(errs.ErrValidation, "unknown market status %q", to)
	}

	m, err := uc.store.Markets().FindByID(ctx, marketID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}
	prev := m.Status()
	if err := m.ChangeStatus(to, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.store.Markets().Update(ctx, m, prev); err != nil {
		return nil, shared.ConflictAs(err, errs.ErrInvalidTransition)
	}

	uc.logger.InfoContext(ctx, "market status changed",
		slog.String("market_id", marketID.String()),
		slog.String("from", prev.String()),
		slog.String("to", to.String()))
	return m, nil
}

// DeleteMarket removes the market's enrollments and rentals before the market itself.
// QR batches stay behind and stop resolving to a market.
func (uc *marketUseCaseImpl) DeleteMarket(ctx context.Context, actor user.Actor, marketID uuid.UUID) error {
	if err := requireStaff(actor); err != nil {
		return err
	}

	m, err := uc.store.Markets().FindByID(ctx, marketID)
	if err != nil {
		return shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}
	if !m.Status().Deletable() {
		return errs.WithDetailf(errs.ErrMarketInUse, "market is %s", m.Status())
	}

	enrollments, err := uc.store.Enrollments().ListByMarket(ctx, marketID)
	if err != nil {
		return err
	}
	for _, e := range enrollments {
		if err := uc.store.Enrollments().Delete(ctx, e.ID()); err != nil && !isNotFound(err) {
			return err
		}
	}

	rentals, err := uc.store.Rentals().ListByMarket(ctx, marketID)
	if err != nil {
		return err
	}
	for _, r := range rentals {
		if err := uc.store.Rentals().Delete(ctx, r.ID()); err != nil && !isNotFound(err) {
			return err
		}
	}

	if err := uc.store.Markets().Delete(ctx, marketID); err != nil {
		return shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}

	uc.cache.Invalidate(ctx, marketID)
	uc.logger.InfoContext(ctx, "market deleted",
		slog.String("market_id", marketID.String()),
		slog.Int("enrollments", len(enrollments)),
		slog.Int("rentals", len(rentals)))
	return nil
}
