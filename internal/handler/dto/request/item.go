package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// LinkItemRequest names the label either by id or by its scanned value.
type LinkItemRequest struct {
	QRCodeID     *uuid.UUID       `json:"qr_code_id" binding:"required_without=Code"`
	Code         string           `json:"code" binding:"omitempty,qrcode"`
	SellingPrice *decimal.Decimal `json:"selling_price" binding:"required"`
}

func (r *LinkItemRequest) Scanned() bool {
	return r.QRCodeID == nil
}

type AddToCartRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
}
