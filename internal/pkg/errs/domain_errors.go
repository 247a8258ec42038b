package errs

import (
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Kind groups error codes into the categories the transport layer maps to statuses.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindNotAuthorized      Kind = "NOT_AUTHORIZED"
	KindInvalidState       Kind = "INVALID_STATE"
	KindCapacityExceeded   Kind = "CAPACITY_EXCEEDED"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindTransient          Kind = "TRANSIENT_STORE_ERROR"
	KindCompensationFailed Kind = "COMPENSATION_FAILED"
)

// DomainError is a stable, coded sentinel. Compare with errors.Is; decorate with WithDetailf.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func define(kind Kind, code, msg string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: msg}
}

var (
	// Not found
	ErrMarketNotFound      = define(KindNotFound, "MARKET_NOT_FOUND", "market not found")
	ErrSellerNotFound      = define(KindNotFound, "SELLER_NOT_FOUND", "seller profile not found")
	ErrQRCodeNotFound      = define(KindNotFound, "QR_CODE_NOT_FOUND", "qr code not found")
	ErrNoMarketAssociation = define(KindNotFound, "NO_MARKET_ASSOCIATION", "qr code batch is not associated with a market")
	ErrItemNotFound        = define(KindNotFound, "ITEM_NOT_FOUND", "item not found")
	ErrReservationNotFound = define(KindNotFound, "RESERVATION_NOT_FOUND", "cart reservation not found")
	ErrRentalNotFound      = define(KindNotFound, "RENTAL_NOT_FOUND", "hanger rental not found")
	ErrNotRegistered       = define(KindNotFound, "NOT_REGISTERED", "seller is not registered for this market")

	// Ownership and role
	ErrNotActiveSeller = define(KindNotAuthorized, "NOT_ACTIVE_SELLER", "seller has not completed identity and payout verification")
	ErrNotEnrolled     = define(KindNotAuthorized, "NOT_ENROLLED", "seller is not enrolled in the market")
	ErrNotOwner        = define(KindNotAuthorized, "NOT_OWNER", "item is not owned by the seller")
	ErrNotAuthorized   = define(KindNotAuthorized, "NOT_AUTHORIZED", "operation not permitted for this caller")

	// Wrong status for the requested transition
	ErrMarketNotOpen      = define(KindInvalidState, "MARKET_NOT_OPEN", "market is not open")
	ErrMarketInUse        = define(KindInvalidState, "MARKET_IN_USE", "market cannot be deleted in its current status")
	ErrNoHangerRental     = define(KindInvalidState, "NO_HANGER_RENTAL", "seller has no active hanger rental for the market")
	ErrRentalLapsed       = define(KindInvalidState, "RENTAL_LAPSED", "hanger rental is no longer active")
	ErrQRInvalidated      = define(KindInvalidState, "QR_INVALIDATED", "qr code has been invalidated")
	ErrWrongItemStatus    = define(KindInvalidState, "WRONG_ITEM_STATUS", "item status does not allow this operation")
	ErrItemNotOnRack      = define(KindInvalidState, "ITEM_NOT_ON_RACK", "item is not listed on a rack")
	ErrItemsOnRack        = define(KindInvalidState, "ITEMS_ON_RACK", "seller still has items listed on the rack")
	ErrReservationExpired = define(KindInvalidState, "RESERVATION_EXPIRED", "cart reservation has expired")
	ErrInvalidTransition  = define(KindInvalidState, "INVALID_TRANSITION", "status transition not allowed")

	// Capacity
	ErrMarketFull          = define(KindCapacityExceeded, "MARKET_FULL", "market has no free vendor or hanger slots")
	ErrCapacityReached     = define(KindCapacityExceeded, "CAPACITY_REACHED", "market capacity was reached by a concurrent request")
	ErrQuotaExceeded       = define(KindCapacityExceeded, "QUOTA_EXCEEDED", "hanger quota exceeded")
	ErrCapacityBelowUsage  = define(KindCapacityExceeded, "CAPACITY_BELOW_USAGE", "new capacity is below current consumption")
	ErrInsufficientHangers = define(KindCapacityExceeded, "INSUFFICIENT_HANGERS", "not enough hanger slots left in the market")

	// Duplicates
	ErrAlreadyRegistered = define(KindAlreadyExists, "ALREADY_REGISTERED", "seller is already registered for this market")
	ErrQRAlreadyUsed     = define(KindAlreadyExists, "QR_ALREADY_USED", "qr code is already linked")
	ErrAlreadyLinked     = define(KindAlreadyExists, "ALREADY_LINKED", "item already has a linked qr code")
	ErrItemReserved      = define(KindAlreadyExists, "ITEM_RESERVED", "item is held in another cart")
	ErrRentalExists      = define(KindAlreadyExists, "RENTAL_EXISTS", "seller already has an active hanger rental for the market")

	// Malformed input
	ErrValidation       = define(KindValidationFailed, "VALIDATION_FAILED", "validation failed")
	ErrInvalidQRFormat  = define(KindValidationFailed, "INVALID_QR_FORMAT", "qr code does not match PREFIX-BATCH-NNNNN")
	ErrInvalidPrice     = define(KindValidationFailed, "INVALID_PRICE", "selling price must be positive")
	ErrInvalidCapacity  = define(KindValidationFailed, "INVALID_CAPACITY", "capacity values must be positive")
	ErrInvalidHangerQty = define(KindValidationFailed, "INVALID_HANGER_COUNT", "hanger count must be positive")

	ErrStoreUnavailable   = define(KindTransient, "TRANSIENT_STORE_ERROR", "store operation failed")
	ErrCompensationFailed = define(KindCompensationFailed, "COMPENSATION_FAILED", "compensating write failed; manual reconciliation required")
)

// Transient marks a low-level store failure that carries no domain meaning.
func Transient(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Mark(cr.Wrap(err, msg), ErrStoreUnavailable)
}

func asDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if cr.As(err, &de) {
		return de, true
	}
	return nil, false
}

func classify(err error) *DomainError {
	if err == nil {
		return nil
	}
	// Compensation failures wrap the original cause, so they must be checked first.
	if cr.Is(err, ErrCompensationFailed) {
		return ErrCompensationFailed
	}
	if de, ok := asDomain(err); ok {
		return de
	}
	if cr.Is(err, ErrStoreUnavailable) {
		return ErrStoreUnavailable
	}
	return nil
}

// KindOf returns "" for errors outside the taxonomy.
func KindOf(err error) Kind {
	if de := classify(err); de != nil {
		return de.Kind
	}
	return ""
}

func CodeOf(err error) string {
	if de := classify(err); de != nil {
		return de.Code
	}
	return ""
}

// Reason renders the sentinel message followed by any attached details.
func Reason(err error) string {
	de := classify(err)
	if de == nil {
		return "internal error"
	}
	details := Details(err)
	if len(details) == 0 {
		return de.Message
	}
	return de.Message + ": " + strings.Join(details, "; ")
}
