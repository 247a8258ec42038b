//go:build unit

package shared_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/metrics"
	"preloved-market/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) step(name string, err error) func(context.Context) error {
	return func(context.Context) error {
		r.calls = append(r.calls, name)
		return err
	}
}

func reservation(rec *recorder, checkErr, commitErr, confirmErr, compErr error) shared.Reservation[string] {
	return shared.Reservation[string]{
		Operation: "test_op",
		Checks:    []func(context.Context) error{rec.step("check1", nil), rec.step("check2", checkErr)},
		Commit: func(ctx context.Context) (string, error) {
			rec.calls = append(rec.calls, "commit")
			return "row", commitErr
		},
		Confirm: func(ctx context.Context, committed string) error {
			rec.calls = append(rec.calls, "confirm:"+committed)
			return confirmErr
		},
		Compensate: func(ctx context.Context, committed string) error {
			rec.calls = append(rec.calls, "compensate:"+committed)
			return compErr
		},
	}
}

func TestReserveWithCompensation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	errCheck := errors.New("check failed")
	errCommit := errors.New("commit failed")

	t.Run("success runs every stage once", func(t *testing.T) {
		rec := &recorder{}
		got, err := shared.ReserveWithCompensation(context.Background(), logger, reservation(rec, nil, nil, nil, nil))

		require.NoError(t, err)
		assert.Equal(t, "row", got)
		assert.Equal(t, []string{"check1", "check2", "commit", "confirm:row"}, rec.calls)
	})

	t.Run("failed check writes nothing", func(t *testing.T) {
		rec := &recorder{}
		_, err := shared.ReserveWithCompensation(context.Background(), logger, reservation(rec, errCheck, nil, nil, nil))

		assert.ErrorIs(t, err, errCheck)
		assert.Equal(t, []string{"check1", "check2"}, rec.calls)
	})

	t.Run("failed commit is not compensated", func(t *testing.T) {
		rec := &recorder{}
		_, err := shared.ReserveWithCompensation(context.Background(), logger, reservation(rec, nil, errCommit, nil, nil))

		assert.ErrorIs(t, err, errCommit)
		assert.Equal(t, []string{"check1", "check2", "commit"}, rec.calls)
	})

	t.Run("failed confirm compensates and returns the confirm error", func(t *testing.T) {
		rec := &recorder{}
		before := counterValue(t, metrics.Compensations.WithLabelValues("test_op", metrics.OutcomeApplied))

		_, err := shared.ReserveWithCompensation(context.Background(), logger,
			reservation(rec, nil, nil, errs.ErrCapacityReached, nil))

		assert.ErrorIs(t, err, errs.ErrCapacityReached)
		assert.Equal(t, []string{"check1", "check2", "commit", "confirm:row", "compensate:row"}, rec.calls)
		assert.Equal(t, before+1, counterValue(t, metrics.Compensations.WithLabelValues("test_op", metrics.OutcomeApplied)))
	})

	t.Run("failed compensation is reported for reconciliation", func(t *testing.T) {
		var buf bytes.Buffer
		jsonLogger := slog.New(slog.NewJSONHandler(&buf, nil))
		rec := &recorder{}
		compErr := errs.Transient(errors.New("connection reset"), "revert")
		before := counterValue(t, metrics.Compensations.WithLabelValues("test_op", metrics.OutcomeFailed))

		_, err := shared.ReserveWithCompensation(context.Background(), jsonLogger,
			reservation(rec, nil, nil, errs.ErrWrongItemStatus, compErr))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCompensationFailed)
		assert.ErrorIs(t, err, errs.ErrWrongItemStatus, "original cause must stay visible")
		assert.Equal(t, errs.KindCompensationFailed, errs.KindOf(err))
		assert.Contains(t, buf.String(), `"fault_class":"compensation_failed"`)
		assert.Contains(t, buf.String(), `"manual_reconciliation":true`)
		assert.Equal(t, before+1, counterValue(t, metrics.Compensations.WithLabelValues("test_op", metrics.OutcomeFailed)))
	})

	t.Run("nested compensation failure is not unwound again", func(t *testing.T) {
		rec := &recorder{}
		nested := errs.Mark(errors.New("inner"), errs.ErrCompensationFailed)

		_, err := shared.ReserveWithCompensation(context.Background(), logger, reservation(rec, nil, nil, nested, nil))

		assert.ErrorIs(t, err, errs.ErrCompensationFailed)
		assert.NotContains(t, rec.calls, "compensate:row")
	})

	t.Run("compensation runs after caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var compCtxErr error
		r := shared.Reservation[int]{
			Operation: "cancelled_op",
			Commit:    func(ctx context.Context) (int, error) { return 1, nil },
			Confirm: func(ctx context.Context, _ int) error {
				cancel()
				return ctx.Err()
			},
			Compensate: func(ctx context.Context, _ int) error {
				compCtxErr = ctx.Err()
				return nil
			},
		}

		_, err := shared.ReserveWithCompensation(ctx, logger, r)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoError(t, compCtxErr)
	})
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}
