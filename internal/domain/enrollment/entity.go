package enrollment

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment registers a seller at a market. Every store keeps both the (seller, market)
// pair and the (market, slot) pair unique, so a market never holds more rows than slots.
type Enrollment struct {
	id        uuid.UUID
	sellerID  uuid.UUID
	marketID  uuid.UUID
	slot      int
	createdAt time.Time
}

// NewEnrollment claims vendor slot for the seller. Slots are numbered from 1.
func NewEnrollment(sellerID, marketID uuid.UUID, slot int, now time.Time) *Enrollment {
	return &Enrollment{
		id:        uuid.New(),
		sellerID:  sellerID,
		marketID:  marketID,
		slot:      slot,
		createdAt: now,
	}
}

func ReconstructEnrollment(id, sellerID, marketID uuid.UUID, slot int, createdAt time.Time) *Enrollment {
	return &Enrollment{id: id, sellerID: sellerID, marketID: marketID, slot: slot, createdAt: createdAt}
}

func (e *Enrollment) ID() uuid.UUID        { return e.id }
func (e *Enrollment) SellerID() uuid.UUID  { return e.sellerID }
func (e *Enrollment) MarketID() uuid.UUID  { return e.marketID }
func (e *Enrollment) Slot() int            { return e.slot }
func (e *Enrollment) CreatedAt() time.Time { return e.createdAt }
