package item

import (
	"strings"
	"time"

	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxTitleLen = 200

// Item invariant: marketID and sellingPrice are set only while the status is RACK or SOLD.
type Item struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	title        string
	status       Status
	marketID     *uuid.UUID
	listedAt     *time.Time
	sellingPrice *decimal.Decimal
	buyerID      *uuid.UUID
	soldAt       *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewItem(ownerID uuid.UUID, title string, now time.Time) (*Item, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLen {
		return nil, errs.WithDetailf(errs.ErrValidation, "title must be 1-%d characters", maxTitleLen)
	}
	return &Item{
		id:        uuid.New(),
		ownerID:   ownerID,
		title:     title,
		status:    StatusWardrobe,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	title string,
	status Status,
	marketID *uuid.UUID,
	listedAt *time.Time,
	sellingPrice *decimal.Decimal,
	buyerID *uuid.UUID,
	soldAt *time.Time,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:           id,
		ownerID:      ownerID,
		title:        title,
		status:       status,
		marketID:     marketID,
		listedAt:     listedAt,
		sellingPrice: sellingPrice,
		buyerID:      buyerID,
		soldAt:       soldAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.WithDetailf(errs.ErrInvalidPrice, "got %s", price.String())
	}
	return nil
}

func (i *Item) OwnedBy(sellerID uuid.UUID) bool {
	return i.ownerID == sellerID
}

// PlaceOnRack lists the item at a market.
func (i *Item) PlaceOnRack(marketID uuid.UUID, price decimal.Decimal, now time.Time) error {
	if i.status != StatusWardrobe {
		return errs.WithDetailf(errs.ErrWrongItemStatus, "item is %s", i.status)
	}
	if err := ValidatePrice(price); err != nil {
		return err
	}
	if err := Transitions.Check(i.status, StatusRack); err != nil {
		return err
	}
	i.status = StatusRack
	i.marketID = ptr.To(marketID)
	i.listedAt = ptr.To(now)
	i.sellingPrice = ptr.To(price)
	i.updatedAt = now
	return nil
}

// Withdraw returns a racked item to the owner's wardrobe.
func (i *Item) Withdraw(now time.Time) error {
	if i.status != StatusRack {
		return errs.ErrItemNotOnRack
	}
	if err := Transitions.Check(i.status, StatusWardrobe); err != nil {
		return err
	}
	i.status = StatusWardrobe
	i.marketID = nil
	i.listedAt = nil
	i.sellingPrice = nil
	i.updatedAt = now
	return nil
}

func (i *Item) MarkSold(buyerID uuid.UUID, now time.Time) error {
	if i.status != StatusRack {
		return errs.ErrItemNotOnRack
	}
	if err := Transitions.Check(i.status, StatusSold); err != nil {
		return err
	}
	i.status = StatusSold
	i.buyerID = ptr.To(buyerID)
	i.soldAt = ptr.To(now)
	i.updatedAt = now
	return nil
}

func (i *Item) ID() uuid.UUID                  { return i.id }
func (i *Item) OwnerID() uuid.UUID             { return i.ownerID }
func (i *Item) Title() string                  { return i.title }
func (i *Item) Status() Status                 { return i.status }
func (i *Item) MarketID() *uuid.UUID           { return i.marketID }
func (i *Item) ListedAt() *time.Time           { return i.listedAt }
func (i *Item) SellingPrice() *decimal.Decimal { return i.sellingPrice }
func (i *Item) BuyerID() *uuid.UUID            { return i.buyerID }
func (i *Item) SoldAt() *time.Time             { return i.soldAt }
func (i *Item) CreatedAt() time.Time           { return i.createdAt }
func (i *Item) UpdatedAt() time.Time           { return i.updatedAt }
