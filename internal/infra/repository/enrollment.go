package repository

import (
	"context"
	"errors"
	"time"

	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EnrollmentRepository struct{ base }

const (
	enrollmentColumns = `id, seller_id, market_id, slot, created_at`
	slotConstraint    = "enrollments_market_slot_key"
)

func scanEnrollment(row pgx.Row) (*enrollment.Enrollment, error) {
	var (
		id, sellerID, marketID uuid.UUID
		slot                   int
		createdAt              time.Time
	)
	if err := row.Scan(&id, &sellerID, &marketID, &slot, &createdAt); err != nil {
		return nil, err
	}
	return enrollment.ReconstructEnrollment(id, sellerID, marketID, slot, createdAt), nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *enrollment.Enrollment) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO enrollments (`+enrollmentColumns+`)
VALUES ($1, $2, $3, $4, $5)`,
		e.ID(), e.SellerID(), e.MarketID(), e.Slot(), e.CreatedAt())
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == slotConstraint {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "vendor slot already taken", err)
	}
	return r.fail(err, "failed to create enrollment")
}

func (r *EnrollmentRepository) Find(ctx context.Context, sellerID, marketID uuid.UUID) (*enrollment.Enrollment, error) {
	e, err := scanEnrollment(r.db.QueryRow(ctx, `
SELECT `+enrollmentColumns+` FROM enrollments WHERE seller_id = $1 AND market_id = $2`,
		sellerID, marketID))
	if err != nil {
		return nil, r.fail(err, "enrollment not found")
	}
	return e, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.deleteOne(ctx, "enrollments", id, "enrollment")
}

func (r *EnrollmentRepository) CountByMarket(ctx context.Context, marketID uuid.UUID) (int, error) {
	return r.count(ctx, "enrollments", `SELECT COUNT(*) FROM enrollments WHERE market_id = $1`, marketID)
}

func (r *EnrollmentRepository) ListByMarket(ctx context.Context, marketID uuid.UUID) ([]*enrollment.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+enrollmentColumns+` FROM enrollments WHERE market_id = $1 ORDER BY seq`, marketID)
	if err != nil {
		return nil, r.fail(err, "failed to list enrollments")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*enrollment.Enrollment, error) {
		return scanEnrollment(row)
	})
	if err != nil {
		return nil, r.fail(err, "failed to read enrollments")
	}
	return out, nil
}

const rentalColumns = `id, seller_id, market_id, hanger_count, status, created_at, updated_at`

type RentalRepository struct{ base }

func scanRental(row pgx.Row) (*hanger.Rental, error) {
	var (
		id, sellerID, marketID uuid.UUID
		count                  int
		status                 string
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &sellerID, &marketID, &count, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return hanger.ReconstructRental(id, sellerID, marketID, count, hanger.Status(status), createdAt, updatedAt), nil
}

func (r *RentalRepository) Create(ctx context.Context, rental *hanger.Rental) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO hanger_rentals (`+rentalColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rental.ID(), rental.SellerID(), rental.MarketID(), rental.HangerCount(),
		string(rental.Status()), rental.CreatedAt(), rental.UpdatedAt())
	if err != nil {
		return r.fail(err, "failed to create hanger rental")
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*hanger.Rental, error) {
	rental, err := scanRental(r.db.QueryRow(ctx, `SELECT `+rentalColumns+` FROM hanger_rentals WHERE id = $1`, id))
	if err != nil {
		return nil, r.fail(err, "hanger rental not found")
	}
	return rental, nil
}

func (r *RentalRepository) FindCurrent(ctx context.Context, sellerID, marketID uuid.UUID) (*hanger.Rental, error) {
	rental, err := scanRental(r.db.QueryRow(ctx, `
SELECT `+rentalColumns+` FROM hanger_rentals
WHERE seller_id = $1 AND market_id = $2 AND status IN ('PENDING', 'CONFIRMED')`,
		sellerID, marketID))
	if err != nil {
		return nil, r.fail(err, "hanger rental not found")
	}
	return rental, nil
}

func (r *RentalRepository) Update(ctx context.Context, rental *hanger.Rental, expected hanger.Status) error {
	return r.execOne(ctx, "hanger_rentals", rental.ID(), "hanger rental", `
UPDATE hanger_rentals SET hanger_count = $2, status = $3, updated_at = $4
WHERE id = $1 AND status = $5`,
		rental.ID(), rental.HangerCount(), string(rental.Status()), rental.UpdatedAt(), string(expected))
}

func (r *RentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.deleteOne(ctx, "hanger_rentals", id, "hanger rental")
}

func (r *RentalRepository) SumActive(ctx context.Context, marketID uuid.UUID, pendingCutoff time.Time) (int, error) {
	return r.count(ctx, "hanger rentals", `
SELECT COALESCE(SUM(hanger_count), 0)::int FROM hanger_rentals
WHERE market_id = $1
  AND (status = 'CONFIRMED' OR (status = 'PENDING' AND created_at > $2))`,
		marketID, pendingCutoff)
}

func (r *RentalRepository) ExpirePending(ctx context.Context, pendingCutoff, now time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE hanger_rentals SET status = 'EXPIRED', updated_at = $2
WHERE status = 'PENDING' AND created_at <= $1`, pendingCutoff, now)
	if err != nil {
		return 0, r.fail(err, "failed to expire pending hanger rentals")
	}
	return int(tag.RowsAffected()), nil
}

func (r *RentalRepository) ListByMarket(ctx context.Context, marketID uuid.UUID) ([]*hanger.Rental, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+rentalColumns+` FROM hanger_rentals WHERE market_id = $1 ORDER BY created_at, id`, marketID)
	if err != nil {
		return nil, r.fail(err, "failed to list hanger rentals")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*hanger.Rental, error) {
		return scanRental(row)
	})
	if err != nil {
		return nil, r.fail(err, "failed to read hanger rentals")
	}
	return out, nil
}
