package infra

import (
	"errors"
	"log/slog"

	"preloved-market/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a store failure. DB failures are additionally marked transient
// so that callers which do not handle them surface TRANSIENT_STORE_ERROR.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	switch kind {
	case KindDBFailure:
		slogger.Error("Repository error: "+msg, logArgs...)
		if err == nil {
			err = errs.New(msg)
		}
		err = errs.Transient(err, msg)
	default:
		slogger.Debug("Repository error: "+msg, logArgs...)
		if err != nil {
			err = errs.Wrap(err, msg)
		}
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// KindConflict reports a conditional update that matched no row in the expected status,
	// or a claim on a slot another row already holds.
	KindConflict RepositoryErrorKind = "CONFLICT"
)
