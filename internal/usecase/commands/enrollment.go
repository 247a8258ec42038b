package commands

import (
	"context"
	"log/slog"

	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/queries"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const opRegister = "register"

type EnrollmentCommands interface {
	Register(ctx context.Context, sellerID, marketID uuid.UUID) (*enrollment.Enrollment, error)
	Unregister(ctx context.Context, sellerID, marketID uuid.UUID) error
}

type enrollmentUseCaseImpl struct {
	store    shared.Store
	capacity queries.CapacityQueries
	cache    shared.CapacityCache
	clock    clock.Clock
	logger   *slog.Logger
}

func NewEnrollmentUseCase(
	store shared.Store,
	capacity queries.CapacityQueries,
	cache shared.CapacityCache,
	clk clock.Clock,
	logger *slog.Logger,
) EnrollmentCommands {
	return &enrollmentUseCaseImpl{store: store, capacity: capacity, cache: cache, clock: clk, logger: logger}
}

func (uc *enrollmentUseCaseImpl) Register(ctx context.Context, sellerID, marketID uuid.UUID) (*enrollment.Enrollment, error) {
	var m *market.Market

	checks := []func(context.Context) error{
		func(ctx context.Context) error {
			profile, err := uc.store.Sellers().FindByID(ctx, sellerID)
			if err != nil {
				return shared.NotFoundAs(err, errs.WithDetailf(errs.ErrNotActiveSeller, "no seller profile"))
			}
			if !profile.IsActive() {
				return errs.ErrNotActiveSeller
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			m, err = uc.store.Markets().FindByID(ctx, marketID)
			if err != nil {
				return shared.NotFoundAs(err, errs.ErrMarketNotFound)
			}
			if !m.IsOpen() {
				return errs.WithDetailf(errs.ErrMarketNotOpen, "market is %s", m.Status())
			}
			return nil
		},
		func(ctx context.Context) error {
			_, err := uc.store.Enrollments().Find(ctx, sellerID, marketID)
			switch {
			case err == nil:
				return errs.ErrAlreadyRegistered
			case isNotFound(err):
				return nil
			default:
				return err
			}
		},
		func(ctx context.Context) error {
			c, err := uc.capacity.Measure(ctx, m)
			if err != nil {
				return err
			}
			if !c.AdmitsVendor() {
				return reject(opRegister, errs.ErrMarketFull, "%s", describe(c))
			}
			return nil
		},
	}

	e, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*enrollment.Enrollment]{
		Operation: opRegister,
		Checks:    checks,
		Commit: func(ctx context.Context) (*enrollment.Enrollment, error) {
			return uc.claimSlot(ctx, sellerID, m)
		},
		// A slot caps the row count at maxVendors unless a capacity cut left rows in
		// higher slots; the recount covers that and the shared hanger pool.
		Confirm: func(ctx context.Context, _ *enrollment.Enrollment) error {
			c, err := uc.capacity.Measure(ctx, m)
			if err != nil {
				return err
			}
			if c.Vendors.Current > m.MaxVendors() || c.HangersExhausted() {
				return reject(opRegister, errs.ErrCapacityReached, "%s", describe(c))
			}
			return nil
		},
		Compensate: func(ctx context.Context, e *enrollment.Enrollment) error {
			return uc.store.Enrollments().Delete(ctx, e.ID())
		},
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, marketID)
	uc.logger.InfoContext(ctx, "seller registered",
		slog.String("seller_id", sellerID.String()),
		slog.String("market_id", marketID.String()))
	return e, nil
}

// claimSlot inserts the enrollment into the lowest free vendor slot. The store's slot
// uniqueness is what keeps concurrent registrations from sharing one.
func (uc *enrollmentUseCaseImpl) claimSlot(ctx context.Context, sellerID uuid.UUID, m *market.Market) (*enrollment.Enrollment, error) {
	for slot := 1; slot <= m.MaxVendors(); slot++ {
		e := enrollment.NewEnrollment(sellerID, m.ID(), slot, uc.clock.Now())
		err := uc.store.Enrollments().Create(ctx, e)
		if err == nil {
			return e, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, shared.DuplicateAs(err, errs.ErrAlreadyRegistered)
		}
	}
	return nil, reject(opRegister, errs.ErrCapacityReached, "all %d vendor slots taken", m.MaxVendors())
}

func (uc *enrollmentUseCaseImpl) Unregister(ctx context.Context, sellerID, marketID uuid.UUID) error {
	e, err := uc.store.Enrollments().Find(ctx, sellerID, marketID)
	if err != nil {
		return shared.NotFoundAs(err, errs.ErrNotRegistered)
	}

	onRack, err := uc.store.Items().CountOnRack(ctx, sellerID, marketID)
	if err != nil {
		return err
	}
	if onRack > 0 {
		return errs.WithDetailf(errs.ErrItemsOnRack, "%d items still listed", onRack)
	}

	// Rental first: a cancelled rental with a surviving enrollment frees capacity
	// and leaves nothing to reconcile if the delete below fails.
	if err := cancelCurrentRental(ctx, uc.store, sellerID, marketID, uc.clock); err != nil {
		return err
	}

	if err := uc.store.Enrollments().Delete(ctx, e.ID()); err != nil {
		return shared.NotFoundAs(err, errs.ErrNotRegistered)
	}

	uc.cache.Invalidate(ctx, marketID)
	uc.logger.InfoContext(ctx, "seller unregistered",
		slog.String("seller_id", sellerID.String()),
		slog.String("market_id", marketID.String()))
	return nil
}

const maxCASAttempts = 3

// cancelCurrentRental cancels the pair's PENDING or CONFIRMED rental, if any.
func cancelCurrentRental(ctx context.Context, store shared.Store, sellerID, marketID uuid.UUID, clk clock.Clock) error {
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		r, err := store.Rentals().FindCurrent(ctx, sellerID, marketID)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		prev := r.Status()
		if err := r.Cancel(clk.Now()); err != nil {
			return err
		}
		err = store.Rentals().Update(ctx, r, prev)
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return err
		}
	}
	return errs.WithDetailf(errs.ErrInvalidTransition, "hanger rental kept changing; cancel abandoned")
}
