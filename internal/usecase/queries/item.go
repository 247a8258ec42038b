package queries

import (
	"context"
	"time"

	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemView struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      uuid.UUID        `json:"owner_id"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	MarketID     *uuid.UUID       `json:"market_id,omitempty"`
	ListedAt     *time.Time       `json:"listed_at,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	BuyerID      *uuid.UUID       `json:"buyer_id,omitempty"`
	SoldAt       *time.Time       `json:"sold_at,omitempty"`
}

func NewItemView(it *item.Item) *ItemView {
	return &ItemView{
		ID:           it.ID(),
		OwnerID:      it.OwnerID(),
		Title:        it.Title(),
		Status:       it.Status().String(),
		MarketID:     it.MarketID(),
		ListedAt:     it.ListedAt(),
		SellingPrice: it.SellingPrice(),
		BuyerID:      it.BuyerID(),
		SoldAt:       it.SoldAt(),
	}
}

type QRCodeView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	BatchID       uuid.UUID  `json:"batch_id"`
	Status        string     `json:"status"`
	ItemID        *uuid.UUID `json:"item_id,omitempty"`
	LinkedAt      *time.Time `json:"linked_at,omitempty"`
	InvalidatedAt *time.Time `json:"invalidated_at,omitempty"`
	InvalidReason string     `json:"invalid_reason,omitempty"`
}

func NewQRCodeView(q *qrcode.QRCode) *QRCodeView {
	return &QRCodeView{
		ID:            q.ID(),
		Code:          q.Code().String(),
		BatchID:       q.BatchID(),
		Status:        q.Status().String(),
		ItemID:        q.ItemID(),
		LinkedAt:      q.LinkedAt(),
		InvalidatedAt: q.InvalidatedAt(),
		InvalidReason: q.InvalidReason(),
	}
}

type ItemQueries interface {
	ListWardrobe(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error)
	// LookupQRCode resolves a scanned label. The format is checked before any lookup.
	LookupQRCode(ctx context.Context, code string) (*QRCodeView, error)
	ListBatchCodes(ctx context.Context, batchID uuid.UUID) ([]*QRCodeView, error)
}

type itemQueriesImpl struct {
	store shared.Store
}

func NewItemQueries(store shared.Store) ItemQueries {
	return &itemQueriesImpl{store: store}
}

func (q *itemQueriesImpl) ListWardrobe(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error) {
	rows, err := q.store.Items().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]*ItemView, 0, len(rows))
	for _, it := range rows {
		views = append(views, NewItemView(it))
	}
	return views, nil
}

func (q *itemQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	it, err := q.store.Items().FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrItemNotFound)
	}
	return NewItemView(it), nil
}

func (q *itemQueriesImpl) LookupQRCode(ctx context.Context, code string) (*QRCodeView, error) {
	parsed, err := qrcode.ParseCode(code)
	if err != nil {
		return nil, err
	}
	qr, err := q.store.QRCodes().FindByCode(ctx, parsed.String())
	if err != nil {
		return nil, shared.NotFoundAs(err, errs.ErrQRCodeNotFound)
	}
	return NewQRCodeView(qr), nil
}

func (q *itemQueriesImpl) ListBatchCodes(ctx context.Context, batchID uuid.UUID) ([]*QRCodeView, error) {
	if _, err := q.store.QRBatches().FindByID(ctx, batchID); err != nil {
		return nil, shared.NotFoundAs(err, errs.WithDetailf(errs.ErrQRCodeNotFound, "batch %s", batchID))
	}
	rows, err := q.store.QRCodes().ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	views := make([]*QRCodeView, 0, len(rows))
	for _, c := range rows {
		views = append(views, NewQRCodeView(c))
	}
	return views, nil
}
