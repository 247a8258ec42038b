package commands

import (
	"context"
	"log/slog"

	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const opMintBatch = "mint_qr_batch"

type MintResult struct {
	Batch *qrcode.Batch
	Codes []*qrcode.QRCode
}

type QRCodeCommands interface {
	MintBatch(ctx context.Context, actor user.Actor, marketID uuid.UUID, prefix string, size int) (*MintResult, error)
	InvalidateQRCode(ctx context.Context, actor user.Actor, qrCodeID uuid.UUID, reason string) (*qrcode.QRCode, error)
}

type qrCodeUseCaseImpl struct {
	store  shared.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewQRCodeUseCase(store shared.Store, clk clock.Clock, logger *slog.Logger) QRCodeCommands {
	return &qrCodeUseCaseImpl{store: store, clock: clk, logger: logger}
}

func (uc *qrCodeUseCaseImpl) MintBatch(ctx context.Context, actor user.Actor, marketID uuid.UUID, prefix string, size int) (*MintResult, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	normalized, err := qrcode.NormalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	if _, err := uc.store.Markets().FindByID(ctx, marketID); err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrMarketNotFound)
	}

	var codes []*qrcode.QRCode
	batch, err := shared.ReserveWithCompensation(ctx, uc.logger, shared.Reservation[*qrcode.Batch]{
		Operation: opMintBatch,
		Commit: func(ctx context.Context) (*qrcode.Batch, error) {
			return uc.claimBatchNumber(ctx, marketID, normalized, size)
		},
		Confirm: func(ctx context.Context, b *qrcode.Batch) error {
			codes = b.Mint()
			return uc.store.QRCodes().CreateMany(ctx, codes)
		},
		Compensate: func(ctx context.Context, b *qrcode.Batch) error {
			return uc.store.QRBatches().Delete(ctx, b.ID())
		},
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "qr batch minted",
		slog.String("market_id", marketID.String()),
		slog.String("prefix", batch.Prefix()),
		slog.Int("number", batch.Number()),
		slog.Int("size", batch.Size()))
	return &MintResult{Batch: batch, Codes: codes}, nil
}

// claimBatchNumber inserts the next batch for the prefix, retrying when a concurrent
// mint took the same number. Running out of attempts is transient; the caller may retry.
func (uc *qrCodeUseCaseImpl) claimBatchNumber(ctx context.Context, marketID uuid.UUID, prefix string, size int) (*qrcode.Batch, error) {
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		n, err := uc.store.QRBatches().CountByPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}
		b, err := qrcode.NewBatch(marketID, prefix, n+1+attempt, size, uc.clock.Now())
		if err != nil {
			return nil, err
		}
		err = uc.store.QRBatches().Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
	}
	return nil, errs.WithDetailf(errs.ErrStoreUnavailable, "batch numbers for prefix %s kept colliding after %d attempts", prefix, maxCASAttempts)
}

func (uc *qrCodeUseCaseImpl) InvalidateQRCode(ctx context.Context, actor user.Actor, qrCodeID uuid.UUID, reason string) (*qrcode.QRCode, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	qr, err := uc.store.QRCodes().FindByID(ctx, qrCodeID)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrQRCodeNotFound)
	}
	// Linked labels are released through item withdrawal, not here.
	if err := qr.Linkable(); err != nil {
		return nil, err
	}
	if err := qr.Invalidate(reason, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.store.QRCodes().Update(ctx, qr, qrcode.StatusUnused); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrQRAlreadyUsed
		}
		return nil, err
	}
	return qr, nil
}
