//go:build unit

package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/errs"
	"preloved-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func (m *MockDBTX) CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	mockArgs := m.Called(ctx, table, columns, src)
	return mockArgs.Get(0).(int64), mockArgs.Error(1)
}

type boolRow struct {
	value bool
	err   error
}

func (r boolRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.value
	return nil
}

func newTestStore(db DBTX) *Store {
	return NewStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMarketCreate_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
		wantTemp bool
	}{
		{
			name:     "unique violation",
			dbErr:    &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "foreign key violation",
			dbErr:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "connection failure is transient",
			dbErr:    errors.New("connection reset by peer"),
			wantKind: infra.KindDBFailure,
			wantTemp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
				Return(pgconn.CommandTag{}, tt.dbErr)

			err := newTestStore(db).Markets().Create(context.Background(), builder.NewMarketBuilder().BuildActive())

			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			assert.Equal(t, tt.wantTemp, errs.Is(err, errs.ErrStoreUnavailable))
			db.AssertExpectations(t)
		})
	}
}

func TestMarketUpdate_MissedRowClassification(t *testing.T) {
	tests := []struct {
		name     string
		exists   bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "row changed", exists: true, wantKind: infra.KindConflict},
		{name: "row gone", exists: false, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
				Return(pgconn.NewCommandTag("UPDATE 0"), nil)
			db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).
				Return(boolRow{value: tt.exists})

			m := builder.NewMarketBuilder().BuildActive()
			err := newTestStore(db).Markets().Update(context.Background(), m, market.StatusDraft)

			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			db.AssertExpectations(t)
		})
	}
}

func TestEnrollmentDelete_NoRowIsNotFound(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
		Return(pgconn.NewCommandTag("DELETE 0"), nil)

	err := newTestStore(db).Enrollments().Delete(context.Background(), uuid.New())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestEnrollmentCreate_ConstraintClassification(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "taken slot is a conflict",
			dbErr:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "enrollments_market_slot_key"},
			wantKind: infra.KindConflict,
		},
		{
			name:     "repeated seller is a duplicate",
			dbErr:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "enrollments_seller_id_market_id_key"},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "unknown market",
			dbErr:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
				Return(pgconn.CommandTag{}, tt.dbErr)

			e := enrollment.NewEnrollment(uuid.New(), uuid.New(), 1, time.Now())
			err := newTestStore(db).Enrollments().Create(context.Background(), e)

			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			db.AssertExpectations(t)
		})
	}
}
