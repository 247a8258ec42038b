package shared

import (
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/errs"
)

// NotFoundAs translates a store miss into the domain sentinel; other errors pass through.
func NotFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// ConflictAs translates a lost compare-and-set into the domain sentinel.
func ConflictAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.WithDetailf(sentinel, "record changed concurrently")
	}
	return err
}

func DuplicateAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return sentinel
	}
	return err
}
