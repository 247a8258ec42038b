package commands

import (
	"context"
	"log/slog"

	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/ptr"
	"preloved-market/internal/usecase/queries"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	opLink       = "link_qr_code"
	opLinkQuota  = "link_qr_code_quota"
	opWithdraw   = "withdraw_item"
	opCreateItem = "create_item"
)

type LinkResult struct {
	QRCode *qrcode.QRCode
	Item   *item.Item
}

type ItemCommands interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, title string) (*item.Item, error)
	// LinkQRCodeToItem moves the code UNUSED->LINKED and the item WARDROBE->RACK.
	// Either both writes stand or the code is reverted.
	LinkQRCodeToItem(ctx context.Context, qrCodeID, itemID, sellerID uuid.UUID, price decimal.Decimal) (*LinkResult, error)
	// LinkScannedCode resolves a printed label and links it.
	LinkScannedCode(ctx context.Context, code string, itemID, sellerID uuid.UUID, price decimal.Decimal) (*LinkResult, error)
	WithdrawItem(ctx context.Context, itemID, sellerID uuid.UUID) (*item.Item, error)
}

type itemUseCaseImpl struct {
	store  shared.Store
	quota  queries.QuotaQueries
	clock  clock.Clock
	policy Policy
	logger *slog.Logger
}

func NewItemUseCase(
	store shared.Store,
	quota queries.QuotaQueries,
	clk clock.Clock,
	policy Policy,
	logger *slog.Logger,
) ItemCommands {
	return &itemUseCaseImpl{store: store, quota: quota, clock: clk, policy: policy, logger: logger}
}

func (uc *itemUseCaseImpl) CreateItem(ctx context.Context, ownerID uuid.UUID, title string) (*item.Item, error) {
	it, err := item.NewItem(ownerID, title, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.store.Items().Create(ctx, it); err != nil {
		return nil, errs.Wrap(err, opCreateItem)
	}
	return it, nil
}

func (uc *itemUseCaseImpl) LinkScannedCode(ctx context.Context, code string, itemID, sellerID uuid.UUID, price decimal.Decimal) (*LinkResult, error) {
	parsed, err := qrcode.ParseCode(code)
	if err != nil {
		return nil, err
	}
	qr, err := uc.store.QRCodes().FindByCode(ctx, parsed.String())
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrQRCodeNotFound)
	}
	return uc.LinkQRCodeToItem(ctx, qr.ID(), itemID, sellerID, price)
}

// linkState is filled in by the precondition checks in order.
type linkState struct {
	qr       *qrcode.QRCode
	marketID uuid.UUID
	item     *item.Item
}

func (uc *itemUseCaseImpl) LinkQRCodeToItem(ctx context.Context, qrCodeID, itemID, sellerID uuid.UUID, price decimal.Decimal) (*LinkResult, error) {
	st := &linkState{}

	_, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*qrcode.QRCode]{
		Operation: opLink,
		Checks:    uc.linkChecks(st, qrCodeID, itemID, sellerID, price),
		Commit: func(ctx context.Context) (*qrcode.QRCode, error) {
			if err := st.qr.Link(itemID, uc.clock.Now()); err != nil {
				return nil, err
			}
			if err := uc.store.QRCodes().Update(ctx, st.qr, qrcode.StatusUnused); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return nil, errs.ErrQRAlreadyUsed
				}
				return nil, err
			}
			return st.qr, nil
		},
		Confirm: func(ctx context.Context, _ *qrcode.QRCode) error {
			return uc.rackItem(ctx, st, sellerID, price)
		},
		Compensate: func(ctx context.Context, qr *qrcode.QRCode) error {
			if err := qr.Unlink(); err != nil {
				return err
			}
			return uc.store.QRCodes().Update(ctx, qr, qrcode.StatusLinked)
		},
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "qr code linked",
		slog.String("qr_code", st.qr.Code().String()),
		slog.String("item_id", itemID.String()),
		slog.String("market_id", st.marketID.String()))
	return &LinkResult{QRCode: st.qr, Item: st.item}, nil
}

func (uc *itemUseCaseImpl) linkChecks(st *linkState, qrCodeID, itemID, sellerID uuid.UUID, price decimal.Decimal) []func(context.Context) error {
	quotaCheck := func(ctx context.Context) error {
		q, err := uc.quota.CanLink(ctx, sellerID, st.marketID)
		if err != nil {
			return err
		}
		if !q.Allowed {
			return reject(opLink, errs.ErrQuotaExceeded, "quota %d of %d used", q.Used, q.Quota)
		}
		return nil
	}

	return []func(context.Context) error{
		func(ctx context.Context) error {
			var err error
			st.qr, err = uc.store.QRCodes().FindByID(ctx, qrCodeID)
			if err != nil {
				return shared.NotFoundAs(err, errs.ErrQRCodeNotFound)
			}
			// A retried link must read as already used even once it filled the quota.
			if st.qr.Status() == qrcode.StatusLinked {
				return errs.ErrQRAlreadyUsed
			}
			return nil
		},
		func(ctx context.Context) error {
			batch, err := uc.store.QRBatches().FindByID(ctx, st.qr.BatchID())
			if err != nil {
				return shared.NotFoundAs(err, errs.ErrNoMarketAssociation)
			}
			if !batch.HasMarket() {
				return errs.ErrNoMarketAssociation
			}
			m, err := uc.store.Markets().FindByID(ctx, batch.MarketID())
			if err != nil {
				return shared.NotFoundAs(err, errs.ErrNoMarketAssociation)
			}
			if !m.IsOpen() {
				return errs.WithDetailf(errs.ErrMarketNotOpen, "market is %s", m.Status())
			}
			st.marketID = m.ID()
			return nil
		},
		func(ctx context.Context) error {
			_, err := uc.store.Enrollments().Find(ctx, sellerID, st.marketID)
			return shared.NotFoundAs(err, errs.ErrNotEnrolled)
		},
		func(ctx context.Context) error {
			r, err := uc.store.Rentals().FindCurrent(ctx, sellerID, st.marketID)
			if err != nil {
				return shared.NotFoundAs(err, errs.ErrNoHangerRental)
			}
			if !r.IsActive(uc.clock.Now(), uc.policy.HangerPendingTTL) {
				return errs.WithDetailf(errs.ErrNoHangerRental, "rental %s", hanger.StatusExpired)
			}
			return nil
		},
		quotaCheck,
		func(ctx context.Context) error {
			return st.qr.Linkable()
		},
		func(ctx context.Context) error {
			var err error
			st.item, err = uc.store.Items().FindByID(ctx, itemID)
			if err != nil {
				return shared.NotFoundAs(err, errs.ErrItemNotFound)
			}
			if !st.item.OwnedBy(sellerID) {
				return errs.ErrNotOwner
			}
			if st.item.Status() != item.StatusWardrobe {
				return errs.WithDetailf(errs.ErrWrongItemStatus, "item is %s", st.item.Status())
			}
			return nil
		},
		func(ctx context.Context) error {
			linked, err := uc.store.QRCodes().FindLinkedByItem(ctx, itemID)
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			return errs.WithDetailf(errs.ErrAlreadyLinked, "linked to %s", linked.Code())
		},
		func(ctx context.Context) error {
			return item.ValidatePrice(price)
		},
		// Quota and usage may have moved while the checks above ran.
		quotaCheck,
	}
}

// rackItem is the second write of a link. It recounts the rack afterwards and
// withdraws the item again when a concurrent link pushed the seller over quota.
func (uc *itemUseCaseImpl) rackItem(ctx context.Context, st *linkState, sellerID uuid.UUID, price decimal.Decimal) error {
	_, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*item.Item]{
		Operation: opLinkQuota,
		Commit: func(ctx context.Context) (*item.Item, error) {
			if err := st.item.PlaceOnRack(st.marketID, price, uc.clock.Now()); err != nil {
				return nil, err
			}
			if err := uc.store.Items().Update(ctx, st.item, item.StatusWardrobe); err != nil {
				return nil, shared.ConflictAs(err, errs.ErrWrongItemStatus)
			}
			return st.item, nil
		},
		Confirm: func(ctx context.Context, _ *item.Item) error {
			q, err := uc.quota.CanLink(ctx, sellerID, st.marketID)
			if err != nil {
				return err
			}
			if q.Used > q.Quota {
				return reject(opLink, errs.ErrQuotaExceeded, "quota %d of %d used", q.Used, q.Quota)
			}
			return nil
		},
		Compensate: func(ctx context.Context, it *item.Item) error {
			if err := it.Withdraw(uc.clock.Now()); err != nil {
				return err
			}
			return uc.store.Items().Update(ctx, it, item.StatusRack)
		},
	})
	return err
}

func (uc *itemUseCaseImpl) WithdrawItem(ctx context.Context, itemID, sellerID uuid.UUID) (*item.Item, error) {
	var (
		it       *item.Item
		marketID uuid.UUID
		price    decimal.Decimal
	)

	heldCheck := func(ctx context.Context) error {
		hold, err := uc.store.Carts().FindByItem(ctx, itemID)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !hold.IsExpired(uc.clock.Now()) {
			return errs.WithDetailf(errs.ErrItemReserved, "held until %s", hold.ExpiresAt().Format("15:04:05"))
		}
		return nil
	}

	_, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*item.Item]{
		Operation: opWithdraw,
		Checks: []func(context.Context) error{
			func(ctx context.Context) error {
				var err error
				it, err = uc.store.Items().FindByID(ctx, itemID)
				if err != nil {
					return shared.NotFoundAs(err, errs.ErrItemNotFound)
				}
				if !it.OwnedBy(sellerID) {
					return errs.ErrNotOwner
				}
				if it.Status() != item.StatusRack {
					return errs.ErrItemNotOnRack
				}
				marketID = ptr.Deref(it.MarketID())
				price = ptr.Deref(it.SellingPrice())
				return nil
			},
			heldCheck,
		},
		Commit: func(ctx context.Context) (*item.Item, error) {
			if err := it.Withdraw(uc.clock.Now()); err != nil {
				return nil, err
			}
			if err := uc.store.Items().Update(ctx, it, item.StatusRack); err != nil {
				return nil, shared.ConflictAs(err, errs.ErrItemNotOnRack)
			}
			return it, nil
		},
		Confirm: func(ctx context.Context, _ *item.Item) error {
			// A buyer may have grabbed the item between the hold check and the write.
			if err := heldCheck(ctx); err != nil {
				return err
			}
			return uc.releaseLinkedCode(ctx, itemID)
		},
		Compensate: func(ctx context.Context, it *item.Item) error {
			if err := it.PlaceOnRack(marketID, price, uc.clock.Now()); err != nil {
				return err
			}
			return uc.store.Items().Update(ctx, it, item.StatusWardrobe)
		},
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// releaseLinkedCode invalidates the label of a withdrawn item; printed labels are not reused.
func (uc *itemUseCaseImpl) releaseLinkedCode(ctx context.Context, itemID uuid.UUID) error {
	qr, err := uc.store.QRCodes().FindLinkedByItem(ctx, itemID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := qr.Invalidate(qrcode.ReasonWithdrawn, uc.clock.Now()); err != nil {
		return err
	}
	return uc.store.QRCodes().Update(ctx, qr, qrcode.StatusLinked)
}
