package commands

import (
	"context"
	"log/slog"
	"strings"

	"preloved-market/internal/domain/seller"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type SyncProfileInput struct {
	DisplayName      string
	IdentityVerified bool
	PayoutVerified   bool
}

// SellerCommands receives verification updates from the onboarding flow.
type SellerCommands interface {
	SyncProfile(ctx context.Context, actor user.Actor, sellerID uuid.UUID, in SyncProfileInput) (*seller.Profile, error)
}

type sellerUseCaseImpl struct {
	store  shared.Store
	logger *slog.Logger
}

func NewSellerUseCase(store shared.Store, logger *slog.Logger) SellerCommands {
	return &sellerUseCaseImpl{store: store, logger: logger}
}

func (uc *sellerUseCaseImpl) SyncProfile(ctx context.Context, actor user.Actor, sellerID uuid.UUID, in SyncProfileInput) (*seller.Profile, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, errs.WithDetailf(errs.ErrValidation, "display name is required")
	}

	p := seller.ReconstructProfile(sellerID, name, in.IdentityVerified, in.PayoutVerified)
	if err := uc.store.Sellers().Save(ctx, p); err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "seller profile synced",
		slog.String("seller_id", sellerID.String()),
		slog.Bool("active", p.IsActive()))
	return p, nil
}
