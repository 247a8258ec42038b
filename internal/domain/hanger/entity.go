package hanger

import (
	"time"

	"preloved-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Rental is a seller's hanger quota at one market.
type Rental struct {
	id          uuid.UUID
	sellerID    uuid.UUID
	marketID    uuid.UUID
	hangerCount int
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRental(sellerID, marketID uuid.UUID, hangerCount int, now time.Time) (*Rental, error) {
	if hangerCount <= 0 {
		return nil, errs.WithDetailf(errs.ErrInvalidHangerQty, "got %d", hangerCount)
	}
	return &Rental{
		id:          uuid.New(),
		sellerID:    sellerID,
		marketID:    marketID,
		hangerCount: hangerCount,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRental(
	id, sellerID, marketID uuid.UUID,
	hangerCount int,
	status Status,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:          id,
		sellerID:    sellerID,
		marketID:    marketID,
		hangerCount: hangerCount,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Lapsed reports a PENDING rental older than the pending window.
func (r *Rental) Lapsed(now time.Time, pendingTTL time.Duration) bool {
	return r.status == StatusPending && !now.Before(r.createdAt.Add(pendingTTL))
}

// EffectiveStatus is the status every reader must act on, whether or not the sweeper ran.
func (r *Rental) EffectiveStatus(now time.Time, pendingTTL time.Duration) Status {
	if r.Lapsed(now, pendingTTL) {
		return StatusExpired
	}
	return r.status
}

func (r *Rental) IsActive(now time.Time, pendingTTL time.Duration) bool {
	s := r.EffectiveStatus(now, pendingTTL)
	return s == StatusPending || s == StatusConfirmed
}

func (r *Rental) Confirm(now time.Time, pendingTTL time.Duration) error {
	if r.Lapsed(now, pendingTTL) {
		return errs.ErrRentalLapsed
	}
	return r.transition(StatusConfirmed, now)
}

func (r *Rental) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

func (r *Rental) Expire(now time.Time) error {
	return r.transition(StatusExpired, now)
}

func (r *Rental) transition(to Status, now time.Time) error {
	if err := Transitions.Check(r.status, to); err != nil {
		return err
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Rental) ID() uuid.UUID        { return r.id }
func (r *Rental) SellerID() uuid.UUID  { return r.sellerID }
func (r *Rental) MarketID() uuid.UUID  { return r.marketID }
func (r *Rental) HangerCount() int     { return r.hangerCount }
func (r *Rental) Status() Status       { return r.status }
func (r *Rental) CreatedAt() time.Time { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time { return r.updatedAt }
