package commands

import (
	"context"
	"log/slog"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/item"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const opAddToCart = "add_to_cart"

type CartCommands interface {
	AddToCart(ctx context.Context, buyerID, itemID uuid.UUID) (*cart.Reservation, error)
	RemoveFromCart(ctx context.Context, buyerID, cartItemID uuid.UUID) error
	ExtendReservation(ctx context.Context, buyerID, cartItemID uuid.UUID) (*cart.Reservation, error)
	// CompleteSale is called by the payment collaborator once a held item is paid for.
	CompleteSale(ctx context.Context, cartItemID uuid.UUID) (*item.Item, error)
}

type cartUseCaseImpl struct {
	store  shared.Store
	clock  clock.Clock
	policy Policy
	logger *slog.Logger
}

func NewCartUseCase(store shared.Store, clk clock.Clock, policy Policy, logger *slog.Logger) CartCommands {
	return &cartUseCaseImpl{store: store, clock: clk, policy: policy, logger: logger}
}

func (uc *cartUseCaseImpl) AddToCart(ctx context.Context, buyerID, itemID uuid.UUID) (*cart.Reservation, error) {
	onRack := func(ctx context.Context) error {
		it, err := uc.store.Items().FindByID(ctx, itemID)
		if err != nil {
			return shared.NotFoundAs(err, errs.ErrItemNotFound)
		}
		if it.Status() != item.StatusRack {
			return errs.ErrItemNotOnRack
		}
		if it.OwnedBy(buyerID) {
			return errs.WithDetailf(errs.ErrNotAuthorized, "sellers cannot hold their own items")
		}
		return nil
	}

	return shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*cart.Reservation]{
		Operation: opAddToCart,
		Checks: []func(context.Context) error{
			onRack,
			func(ctx context.Context) error {
				existing, err := uc.store.Carts().FindByItem(ctx, itemID)
				if infra.IsKind(err, infra.KindNotFound) {
					return nil
				}
				if err != nil {
					return err
				}
				now := uc.clock.Now()
				if !existing.IsExpired(now) {
					return reject(opAddToCart, errs.ErrItemReserved, "held until %s", existing.ExpiresAt().Format("15:04:05"))
				}
				// Lapsed holds are released here even if the sweeper has not run.
				_, err = uc.store.Carts().DeleteIfExpired(ctx, existing.ID(), now)
				return err
			},
		},
		Commit: func(ctx context.Context) (*cart.Reservation, error) {
			r := cart.NewReservation(buyerID, itemID, uc.clock.Now(), uc.policy.CartHoldWindow)
			if err := uc.store.Carts().Create(ctx, r); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return nil, reject(opAddToCart, errs.ErrItemReserved, "held by another buyer")
				}
				return nil, err
			}
			return r, nil
		},
		// The item may have been sold or withdrawn between the check and the insert.
		Confirm: func(ctx context.Context, _ *cart.Reservation) error {
			return onRack(ctx)
		},
		Compensate: func(ctx context.Context, r *cart.Reservation) error {
			return uc.store.Carts().Delete(ctx, r.ID())
		},
	})
}

func (uc *cartUseCaseImpl) RemoveFromCart(ctx context.Context, buyerID, cartItemID uuid.UUID) error {
	r, err := uc.store.Carts().FindByID(ctx, cartItemID)
	if err != nil {
		return shared.NotFoundAs(err, errs.ErrReservationNotFound)
	}
	if !r.HeldBy(buyerID) {
		return errs.ErrNotAuthorized
	}
	return shared.NotFoundAs(uc.store.Carts().Delete(ctx, cartItemID), errs.ErrReservationNotFound)
}

func (uc *cartUseCaseImpl) ExtendReservation(ctx context.Context, buyerID, cartItemID uuid.UUID) (*cart.Reservation, error) {
	r, err := uc.store.Carts().FindByID(ctx, cartItemID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrReservationNotFound)
	}
	if !r.HeldBy(buyerID) {
		return nil, errs.ErrNotAuthorized
	}

	prev := r.ExpiresAt()
	now := uc.clock.Now()
	if err := r.Extend(now, uc.policy.CartExtension); err != nil {
		return nil, err
	}

	err = uc.store.Carts().Update(ctx, r, prev)
	switch {
	case err == nil:
		return r, nil
	case infra.IsKind(err, infra.KindConflict):
		// A concurrent extension won; the hold is still ours if it is still live.
		cur, ferr := uc.store.Carts().FindByID(ctx, cartItemID)
		if ferr != nil {
			return nil, shared.NotFoundAs(ferr, errs.ErrReservationNotFound)
		}
		if !cur.HeldBy(buyerID) || cur.IsExpired(now) {
			return nil, errs.ErrReservationExpired
		}
		return cur, nil
	default:
		return nil, shared.NotFoundAs(err, errs.ErrReservationNotFound)
	}
}

func (uc *cartUseCaseImpl) CompleteSale(ctx context.Context, cartItemID uuid.UUID) (*item.Item, error) {
	r, err := uc.store.Carts().FindByID(ctx, cartItemID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrReservationNotFound)
	}
	now := uc.clock.Now()
	if r.IsExpired(now) {
		return nil, errs.ErrReservationExpired
	}

	it, err := uc.store.Items().FindByID(ctx, r.ItemID())
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrItemNotFound)
	}
	if err := it.MarkSold(r.BuyerID(), now); err != nil {
		return nil, err
	}
	if err := uc.store.Items().Update(ctx, it, item.StatusRack); err != nil {
		return nil, shared.ConflictAs(err, errs.ErrItemNotOnRack)
	}

	// The item is SOLD either way; a hold left behind lapses and is swept.
	if err := uc.store.Carts().Delete(ctx, r.ID()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		uc.logger.WarnContext(ctx, "failed to release hold after sale",
			slog.String("cart_item_id", r.ID().String()),
			slog.String("error", err.Error()))
	}

	uc.logger.InfoContext(ctx, "item sold",
		slog.String("item_id", it.ID().String()),
		slog.String("buyer_id", r.BuyerID().String()))
	return it, nil
}
