// Package response shapes use-case results for the JSON API.
package response

import (
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/seller"
	"preloved-market/internal/usecase/commands"
	"preloved-market/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// fromEntity fills T from the getter methods of a domain entity.
func fromEntity[T any](src any) (*T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return nil, errors.Wrapf(err, "copy %T into response", src)
	}
	return &dst, nil
}

type EnrollmentResponse struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	MarketID  uuid.UUID `json:"market_id"`
	Slot      int       `json:"slot"`
	CreatedAt time.Time `json:"created_at"`
}

func FromEnrollment(e *enrollment.Enrollment) (*EnrollmentResponse, error) {
	return fromEntity[EnrollmentResponse](e)
}

type RentalResponse struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	MarketID    uuid.UUID `json:"market_id"`
	HangerCount int       `json:"hanger_count"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRental(r *hanger.Rental) (*RentalResponse, error) {
	return fromEntity[RentalResponse](r)
}

type CartReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	ItemID    uuid.UUID `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromCartReservation(r *cart.Reservation) (*CartReservationResponse, error) {
	return fromEntity[CartReservationResponse](r)
}

type SellerResponse struct {
	ID               uuid.UUID `json:"id"`
	DisplayName      string    `json:"display_name"`
	IdentityVerified bool      `json:"identity_verified"`
	PayoutVerified   bool      `json:"payout_verified"`
	IsActive         bool      `json:"is_active"`
}

func FromSeller(p *seller.Profile) (*SellerResponse, error) {
	return fromEntity[SellerResponse](p)
}

type BatchResponse struct {
	ID        uuid.UUID             `json:"id"`
	MarketID  uuid.UUID             `json:"market_id"`
	Prefix    string                `json:"prefix"`
	Number    int                   `json:"number"`
	Size      int                   `json:"size"`
	CreatedAt time.Time             `json:"created_at"`
	Codes     []*queries.QRCodeView `json:"codes" copier:"-"`
}

func FromMintResult(res *commands.MintResult) (*BatchResponse, error) {
	out, err := fromEntity[BatchResponse](res.Batch)
	if err != nil {
		return nil, err
	}
	out.Codes = make([]*queries.QRCodeView, len(res.Codes))
	for i, q := range res.Codes {
		out.Codes[i] = queries.NewQRCodeView(q)
	}
	return out, nil
}

type LinkResponse struct {
	QRCode *queries.QRCodeView `json:"qr_code"`
	Item   *queries.ItemView   `json:"item"`
}

func FromLinkResult(res *commands.LinkResult) *LinkResponse {
	return &LinkResponse{
		QRCode: queries.NewQRCodeView(res.QRCode),
		Item:   queries.NewItemView(res.Item),
	}
}
