package cart

import (
	"time"

	"preloved-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reservation holds an item for one buyer until expiresAt. At most one row exists per item.
type Reservation struct {
	id        uuid.UUID
	buyerID   uuid.UUID
	itemID    uuid.UUID
	createdAt time.Time
	expiresAt time.Time
}

func NewReservation(buyerID, itemID uuid.UUID, now time.Time, holdWindow time.Duration) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		buyerID:   buyerID,
		itemID:    itemID,
		createdAt: now,
		expiresAt: now.Add(holdWindow),
	}
}

func ReconstructReservation(id, buyerID, itemID uuid.UUID, createdAt, expiresAt time.Time) *Reservation {
	return &Reservation{id: id, buyerID: buyerID, itemID: itemID, createdAt: createdAt, expiresAt: expiresAt}
}

// IsExpired treats the expiry instant itself as released.
func (r *Reservation) IsExpired(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

func (r *Reservation) HeldBy(buyerID uuid.UUID) bool {
	return r.buyerID == buyerID
}

// Extend sets the expiry to now + increment; the previous expiry is not carried over.
func (r *Reservation) Extend(now time.Time, increment time.Duration) error {
	if r.IsExpired(now) {
		return errs.ErrReservationExpired
	}
	r.expiresAt = now.Add(increment)
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) BuyerID() uuid.UUID   { return r.buyerID }
func (r *Reservation) ItemID() uuid.UUID    { return r.itemID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }
