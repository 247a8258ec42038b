package shared

import (
	"context"
	"log/slog"

	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/metrics"
)

// FaultCompensationFailed is the log fault class for states needing manual reconciliation.
const FaultCompensationFailed = "compensation_failed"

// Reservation describes one check-act-recheck-compensate workflow.
//
// Checks run in order and stop at the first error; nothing has been written yet.
// Commit performs the first single-record write. Confirm either re-reads the state
// the commit raced with or performs the second write. When Confirm fails,
// Compensate issues the inverse of Commit and Confirm's error is returned.
type Reservation[T any] struct {
	Operation  string
	Checks     []func(ctx context.Context) error
	Commit     func(ctx context.Context) (T, error)
	Confirm    func(ctx context.Context, committed T) error
	Compensate func(ctx context.Context, committed T) error
}

func ReserveWithCompensation[T any](ctx context.Context, logger *slog.Logger, r Reservation[T]) (T, error) {
	var zero T

	for _, check := range r.Checks {
		if err := check(ctx); err != nil {
			return zero, err
		}
	}

	committed, err := r.Commit(ctx)
	if err != nil {
		return zero, err
	}

	if r.Confirm == nil {
		return committed, nil
	}
	confirmErr := r.Confirm(ctx, committed)
	if confirmErr == nil {
		return committed, nil
	}

	// A nested workflow that already failed to compensate left its own record in
	// place; unwinding ours would split the pair.
	if errs.Is(confirmErr, errs.ErrCompensationFailed) {
		return zero, confirmErr
	}

	// The caller may have gone away; the inverse write still has to happen.
	compErr := r.Compensate(context.WithoutCancel(ctx), committed)
	if compErr != nil {
		metrics.Compensations.WithLabelValues(r.Operation, metrics.OutcomeFailed).Inc()
		logger.ErrorContext(ctx, "compensating write failed",
			slog.String("fault_class", FaultCompensationFailed),
			slog.Bool("manual_reconciliation", true),
			slog.String("operation", r.Operation),
			slog.String("cause", confirmErr.Error()),
			slog.String("compensation_error", compErr.Error()),
		)
		return zero, errs.Mark(errs.CombineErrors(confirmErr, compErr), errs.ErrCompensationFailed)
	}

	metrics.Compensations.WithLabelValues(r.Operation, metrics.OutcomeApplied).Inc()
	logger.WarnContext(ctx, "compensated",
		slog.String("operation", r.Operation),
		slog.String("cause", confirmErr.Error()),
	)
	return zero, confirmErr
}
