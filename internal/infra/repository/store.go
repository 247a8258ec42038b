// Package repository implements the single-record stores on PostgreSQL. Every method is
// one statement; compare-and-set updates carry the expected status in the WHERE clause.
package repository

import (
	"context"
	"errors"
	"log/slog"

	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/pgconv"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Store struct {
	db     DBTX
	logger *slog.Logger
}

var _ shared.Store = (*Store)(nil)

func NewStore(db DBTX, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) Markets() shared.MarketStore         { return &MarketRepository{s.base()} }
func (s *Store) Sellers() shared.SellerStore         { return &SellerRepository{s.base()} }
func (s *Store) Enrollments() shared.EnrollmentStore { return &EnrollmentRepository{s.base()} }
func (s *Store) Rentals() shared.HangerRentalStore   { return &RentalRepository{s.base()} }
func (s *Store) QRBatches() shared.QRBatchStore      { return &BatchRepository{s.base()} }
func (s *Store) QRCodes() shared.QRCodeStore         { return &QRCodeRepository{s.base()} }
func (s *Store) Items() shared.ItemStore             { return &ItemRepository{s.base()} }
func (s *Store) Carts() shared.CartStore             { return &CartRepository{s.base()} }

func (s *Store) base() base {
	return base{db: s.db, logger: s.logger}
}

type base struct {
	db     DBTX
	logger *slog.Logger
}

// fail classifies a driver error into a repository error kind.
func (b base) fail(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(b.logger, infra.KindNotFound, msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return infra.WrapRepoErr(b.logger, infra.KindDuplicateKey, msg, err)
		case pgerrcode.ForeignKeyViolation:
			return infra.WrapRepoErr(b.logger, infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(b.logger, infra.KindDBFailure, msg, err)
}

func (b base) notFound(msg string) error {
	return infra.WrapRepoErr(b.logger, infra.KindNotFound, msg, nil)
}

// missedUpdate explains a conditional write that touched no row: either the row is gone
// or its guard column no longer holds the expected value.
func (b base) missedUpdate(ctx context.Context, table string, id uuid.UUID, what string) error {
	var exists bool
	// table is always a package constant.
	err := b.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return b.fail(err, "failed to inspect "+what)
	}
	if !exists {
		return b.notFound(what + " not found")
	}
	return infra.WrapRepoErr(b.logger, infra.KindConflict, what+" changed concurrently", nil)
}

// execOne runs a statement that must affect exactly one row identified by id.
func (b base) execOne(ctx context.Context, table string, id uuid.UUID, what, sql string, args ...any) error {
	tag, err := b.db.Exec(ctx, sql, args...)
	if err != nil {
		return b.fail(err, "failed to write "+what)
	}
	if tag.RowsAffected() == 0 {
		return b.missedUpdate(ctx, table, id, what)
	}
	return nil
}

func (b base) count(ctx context.Context, what, sql string, args ...any) (int, error) {
	var n int
	if err := b.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, b.fail(err, "failed to count "+what)
	}
	return n, nil
}

func (b base) deleteOne(ctx context.Context, table string, id uuid.UUID, what string) error {
	tag, err := b.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return b.fail(err, "failed to delete "+what)
	}
	if tag.RowsAffected() == 0 {
		return b.notFound(what + " not found")
	}
	return nil
}
