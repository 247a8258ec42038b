package commands

import (
	"context"
	"log/slog"

	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/queries"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const opRentHangers = "rent_hangers"

type HangerCommands interface {
	RentHangers(ctx context.Context, sellerID, marketID uuid.UUID, count int) (*hanger.Rental, error)
	ConfirmRental(ctx context.Context, actor user.Actor, rentalID uuid.UUID) (*hanger.Rental, error)
	CancelRental(ctx context.Context, actor user.Actor, rentalID uuid.UUID) error
}

type hangerUseCaseImpl struct {
	store    shared.Store
	capacity queries.CapacityQueries
	cache    shared.CapacityCache
	clock    clock.Clock
	policy   Policy
	logger   *slog.Logger
}

func NewHangerUseCase(
	store shared.Store,
	capacity queries.CapacityQueries,
	cache shared.CapacityCache,
	clk clock.Clock,
	policy Policy,
	logger *slog.Logger,
) HangerCommands {
	return &hangerUseCaseImpl{store: store, capacity: capacity, cache: cache, clock: clk, policy: policy, logger: logger}
}

func (uc *hangerUseCaseImpl) RentHangers(ctx context.Context, sellerID, marketID uuid.UUID, count int) (*hanger.Rental, error) {
	rental, err := hanger.NewRental(sellerID, marketID, count, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var m *market.Market
	checks := []func(context.Context) error{
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
			return shared.NotFoundAs(err, errs.ErrNotEnrolled)
		},
		uc.releaseLapsed(sellerID, marketID),
		func(ctx context.Context) error {
			c, err := uc.capacity.Measure(ctx, m)
			if err != nil {
				return err
			}
			if !c.AdmitsHangers(count) {
				return reject(opRentHangers, errs.ErrInsufficientHangers,
					"requested %d, %d of %d hangers available", count, c.Hangers.Available, c.Hangers.Max)
			}
			return nil
		},
	}

	created, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*hanger.Rental]{
		Operation: opRentHangers,
		Checks:    checks,
		Commit: func(ctx context.Context) (*hanger.Rental, error) {
			if err := uc.store.Rentals().Create(ctx, rental); err != nil {
				return nil, shared.DuplicateAs(err, errs.ErrRentalExists)
			}
			return rental, nil
		},
		Confirm: func(ctx context.Context, r *hanger.Rental) error {
			c, err := uc.capacity.Measure(ctx, m)
			if err != nil {
				return err
			}
			if c.HangersOverbooked() {
				return reject(opRentHangers, errs.ErrCapacityReached, "%s", describe(c))
			}
			return nil
		},
		Compensate: func(ctx context.Context, r *hanger.Rental) error {
			if err := r.Cancel(uc.clock.Now()); err != nil {
				return err
			}
			return uc.store.Rentals().Update(ctx, r, hanger.StatusPending)
		},
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, marketID)
	return created, nil
}

// releaseLapsed rejects a live rental for the pair and expires a lapsed PENDING one
// so that the active-pair uniqueness constraint admits the new row.
func (uc *hangerUseCaseImpl) releaseLapsed(sellerID, marketID uuid.UUID) func(context.Context) error {
	return func(ctx context.Context) error {
		cur, err := uc.store.Rentals().FindCurrent(ctx, sellerID, marketID)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if cur.IsActive(now, uc.policy.HangerPendingTTL) {
			return errs.WithDetailf(errs.ErrRentalExists, "rental %s is %s", cur.ID(), cur.Status())
		}
		if err := cur.Expire(now); err != nil {
			return err
		}
		err = uc.store.Rentals().Update(ctx, cur, hanger.StatusPending)
		if infra.IsKind(err, infra.KindConflict) {
			// Someone else (usually the sweeper) already moved it on.
			return nil
		}
		return err
	}
}

func (uc *hangerUseCaseImpl) ConfirmRental(ctx context.Context, actor user.Actor, rentalID uuid.UUID) (*hanger.Rental, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	r, err := uc.store.Rentals().FindByID(ctx, rentalID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrRentalNotFound)
	}
	prev := r.Status()
	if err := r.Confirm(uc.clock.Now(), uc.policy.HangerPendingTTL); err != nil {
		return nil, err
	}
	if err := uc.store.Rentals().Update(ctx, r, prev); err != nil {
		return nil, shared.ConflictAs(err, errs.ErrInvalidTransition)
	}

	uc.logger.InfoContext(ctx, "hanger rental confirmed",
		slog.String("rental_id", r.ID().String()),
		slog.String("operator_id", actor.ID.String()))
	return r, nil
}

func (uc *hangerUseCaseImpl) CancelRental(ctx context.Context, actor user.Actor, rentalID uuid.UUID) error {
	r, err := uc.store.Rentals().FindByID(ctx, rentalID)
	if err != nil {
		return shared.NotFoundAs(err, errs.ErrRentalNotFound)
	}
	if r.SellerID() != actor.ID && !actor.Role.IsStaff() {
		return errs.ErrNotAuthorized
	}

	onRack, err := uc.store.Items().CountOnRack(ctx, r.SellerID(), r.MarketID())
	if err != nil {
		return err
	}
	if onRack > 0 {
		return errs.WithDetailf(errs.ErrItemsOnRack, "%d items still listed", onRack)
	}

	prev := r.Status()
	if err := r.Cancel(uc.clock.Now()); err != nil {
		return err
	}
	if err := uc.store.Rentals().Update(ctx, r, prev); err != nil {
		return shared.ConflictAs(err, errs.ErrInvalidTransition)
	}

	uc.cache.Invalidate(ctx, r.MarketID())
	return nil
}
