package commands

import (
	"fmt"
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/metrics"
)

// Policy carries the product rules that are configuration rather than invariants.
type Policy struct {
	CartHoldWindow          time.Duration
	CartExtension           time.Duration
	HangerPendingTTL        time.Duration
	DefaultHangersPerVendor int
}

func DefaultPolicy() Policy {
	return Policy{
		CartHoldWindow:          15 * time.Minute,
		CartExtension:           15 * time.Minute,
		HangerPendingTTL:        24 * time.Hour,
		DefaultHangersPerVendor: 2,
	}
}

func requireStaff(actor user.Actor) error {
	if !actor.Role.IsStaff() {
		return errs.WithDetailf(errs.ErrNotAuthorized, "role %q", actor.Role)
	}
	return nil
}

func describe(c market.Capacity) string {
	return fmt.Sprintf("vendors %d of %d, hangers %d of %d",
		c.Vendors.Current, c.Vendors.Max, c.Hangers.Current, c.Hangers.Max)
}

// reject counts a capacity-class refusal before returning it.
func reject(operation string, sentinel *errs.DomainError, format string, args ...any) error {
	metrics.CapacityRejections.WithLabelValues(operation, sentinel.Code).Inc()
	return errs.WithDetailf(sentinel, format, args...)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
