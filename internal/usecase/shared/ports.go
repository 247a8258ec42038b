package shared

import (
	"context"
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/domain/seller"

	"github.com/google/uuid"
)

// Store exposes single-record repositories. No method spans more than one record
// atomically; Update methods taking an expected status are compare-and-set and report
// infra.KindConflict when the stored status differs.
type Store interface {
	Markets() MarketStore
	Sellers() SellerStore
	Enrollments() EnrollmentStore
	Rentals() HangerRentalStore
	QRBatches() QRBatchStore
	QRCodes() QRCodeStore
	Items() ItemStore
	Carts() CartStore
}

type MarketStore interface {
	Create(ctx context.Context, m *market.Market) error
	FindByID(ctx context.Context, id uuid.UUID) (*market.Market, error)
	List(ctx context.Context) ([]*market.Market, error)
	Update(ctx context.Context, m *market.Market, expected market.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SellerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*seller.Profile, error)
	Save(ctx context.Context, p *seller.Profile) error
}

type EnrollmentStore interface {
	// Create fails with KindDuplicateKey when the seller is already enrolled and with
	// KindConflict when the enrollment's slot is taken.
	Create(ctx context.Context, e *enrollment.Enrollment) error
	Find(ctx context.Context, sellerID, marketID uuid.UUID) (*enrollment.Enrollment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByMarket(ctx context.Context, marketID uuid.UUID) (int, error)
	ListByMarket(ctx context.Context, marketID uuid.UUID) ([]*enrollment.Enrollment, error)
}

type HangerRentalStore interface {
	Create(ctx context.Context, r *hanger.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*hanger.Rental, error)
	// FindCurrent returns the PENDING or CONFIRMED row for the pair without applying
	// lazy expiry.
	FindCurrent(ctx context.Context, sellerID, marketID uuid.UUID) (*hanger.Rental, error)
	Update(ctx context.Context, r *hanger.Rental, expected hanger.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SumActive adds CONFIRMED rentals and PENDING rentals created after pendingCutoff.
	SumActive(ctx context.Context, marketID uuid.UUID, pendingCutoff time.Time) (int, error)
	ExpirePending(ctx context.Context, pendingCutoff, now time.Time) (int, error)
	ListByMarket(ctx context.Context, marketID uuid.UUID) ([]*hanger.Rental, error)
}

type QRBatchStore interface {
	Create(ctx context.Context, b *qrcode.Batch) error
	FindByID(ctx context.Context, id uuid.UUID) (*qrcode.Batch, error)
	// CountByPrefix drives batch numbering; (prefix, number) is unique so codes never collide.
	CountByPrefix(ctx context.Context, prefix string) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type QRCodeStore interface {
	// CreateMany inserts a whole batch in one statement.
	CreateMany(ctx context.Context, codes []*qrcode.QRCode) error
	FindByID(ctx context.Context, id uuid.UUID) (*qrcode.QRCode, error)
	FindByCode(ctx context.Context, code string) (*qrcode.QRCode, error)
	FindLinkedByItem(ctx context.Context, itemID uuid.UUID) (*qrcode.QRCode, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*qrcode.QRCode, error)
	Update(ctx context.Context, q *qrcode.QRCode, expected qrcode.Status) error
}

type ItemStore interface {
	Create(ctx context.Context, it *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*item.Item, error)
	Update(ctx context.Context, it *item.Item, expected item.Status) error
	// CountOnRack counts the owner's RACK items listed at the market.
	CountOnRack(ctx context.Context, ownerID, marketID uuid.UUID) (int, error)
}

type CartStore interface {
	Create(ctx context.Context, r *cart.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*cart.Reservation, error)
	FindByItem(ctx context.Context, itemID uuid.UUID) (*cart.Reservation, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*cart.Reservation, error)
	// Update replaces the expiry only while it still equals expectedExpiry.
	Update(ctx context.Context, r *cart.Reservation, expectedExpiry time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteIfExpired removes the row only when it has lapsed at now.
	DeleteIfExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// CapacityCache serves display-only capacity snapshots. Writers never read it.
type CapacityCache interface {
	Get(ctx context.Context, marketID uuid.UUID) (market.Capacity, bool)
	Set(ctx context.Context, marketID uuid.UUID, c market.Capacity)
	Invalidate(ctx context.Context, marketID uuid.UUID)
}
