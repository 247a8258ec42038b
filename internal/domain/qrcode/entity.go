package qrcode

import (
	"time"

	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/ptr"

	"github.com/google/uuid"
)

// QRCode invariant: itemID is set iff status is LINKED.
type QRCode struct {
	id            uuid.UUID
	code          Code
	batchID       uuid.UUID
	status        Status
	itemID        *uuid.UUID
	linkedAt      *time.Time
	invalidatedAt *time.Time
	invalidReason string
}

func ReconstructQRCode(
	id uuid.UUID,
	code string,
	batchID uuid.UUID,
	status Status,
	itemID *uuid.UUID,
	linkedAt, invalidatedAt *time.Time,
	invalidReason string,
) *QRCode {
	return &QRCode{
		id:            id,
		code:          Code{value: code},
		batchID:       batchID,
		status:        status,
		itemID:        itemID,
		linkedAt:      linkedAt,
		invalidatedAt: invalidatedAt,
		invalidReason: invalidReason,
	}
}

// Linkable maps a non-UNUSED code to the error the caller should see.
func (q *QRCode) Linkable() error {
	switch q.status {
	case StatusUnused:
		return nil
	case StatusInvalid:
		return errs.ErrQRInvalidated
	default:
		return errs.ErrQRAlreadyUsed
	}
}

func (q *QRCode) Link(itemID uuid.UUID, now time.Time) error {
	if err := q.Linkable(); err != nil {
		return err
	}
	if err := Transitions.Check(q.status, StatusLinked); err != nil {
		return err
	}
	q.status = StatusLinked
	q.itemID = ptr.To(itemID)
	q.linkedAt = ptr.To(now)
	return nil
}

// Unlink restores the pre-link state; only used to compensate a failed item update.
func (q *QRCode) Unlink() error {
	if err := Transitions.Check(q.status, StatusUnused); err != nil {
		return err
	}
	q.status = StatusUnused
	q.itemID = nil
	q.linkedAt = nil
	return nil
}

func (q *QRCode) Invalidate(reason string, now time.Time) error {
	if err := Transitions.Check(q.status, StatusInvalid); err != nil {
		return err
	}
	q.status = StatusInvalid
	q.itemID = nil
	q.invalidatedAt = ptr.To(now)
	q.invalidReason = reason
	return nil
}

func (q *QRCode) ID() uuid.UUID             { return q.id }
func (q *QRCode) Code() Code                { return q.code }
func (q *QRCode) BatchID() uuid.UUID        { return q.batchID }
func (q *QRCode) Status() Status            { return q.status }
func (q *QRCode) ItemID() *uuid.UUID        { return q.itemID }
func (q *QRCode) LinkedAt() *time.Time      { return q.linkedAt }
func (q *QRCode) InvalidatedAt() *time.Time { return q.invalidatedAt }
func (q *QRCode) InvalidReason() string     { return q.invalidReason }
