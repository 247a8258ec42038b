package repository

import (
	"context"
	"time"

	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BatchRepository struct{ base }

func (r *BatchRepository) Create(ctx context.Context, b *qrcode.Batch) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO qr_batches (id, market_id, prefix, number, size, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), pgconv.NilableUUIDToPgtype(b.MarketID()), b.Prefix(), b.Number(), b.Size(), b.CreatedAt())
	if err != nil {
		return r.fail(err, "failed to create qr batch")
	}
	return nil
}

func (r *BatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*qrcode.Batch, error) {
	var (
		marketID     pgtype.UUID
		prefix       string
		number, size int
		createdAt    time.Time
	)
	err := r.db.QueryRow(ctx, `
SELECT market_id, prefix, number, size, created_at FROM qr_batches WHERE id = $1`, id).
		Scan(&marketID, &prefix, &number, &size, &createdAt)
	if err != nil {
		return nil, r.fail(err, "qr batch not found")
	}
	return qrcode.ReconstructBatch(id, pgconv.UUIDOrNil(marketID), prefix, number, size, createdAt), nil
}

func (r *BatchRepository) CountByPrefix(ctx context.Context, prefix string) (int, error) {
	return r.count(ctx, "qr batches", `SELECT COUNT(*) FROM qr_batches WHERE prefix = $1`, prefix)
}

func (r *BatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.deleteOne(ctx, "qr_batches", id, "qr batch")
}

const codeColumns = `id, code, batch_id, status, item_id, linked_at, invalidated_at, invalid_reason`

type QRCodeRepository struct{ base }

func scanCode(row pgx.Row) (*qrcode.QRCode, error) {
	var (
		id, batchID             uuid.UUID
		code, status, reason    string
		itemID                  pgtype.UUID
		linkedAt, invalidatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &code, &batchID, &status, &itemID, &linkedAt, &invalidatedAt, &reason); err != nil {
		return nil, err
	}
	return qrcode.ReconstructQRCode(
		id, code, batchID, qrcode.Status(status),
		pgconv.UUIDPtrFromPgtype(itemID),
		pgconv.TimePtrFromPgtype(linkedAt), pgconv.TimePtrFromPgtype(invalidatedAt),
		reason,
	), nil
}

func (r *QRCodeRepository) CreateMany(ctx context.Context, codes []*qrcode.QRCode) error {
	rows := make([][]any, 0, len(codes))
	for _, q := range codes {
		rows = append(rows, []any{
			q.ID(), q.Code().String(), q.BatchID(), string(q.Status()),
			pgconv.UUIDPtrToPgtype(q.ItemID()),
			pgconv.TimePtrToPgtype(q.LinkedAt()), pgconv.TimePtrToPgtype(q.InvalidatedAt()),
			q.InvalidReason(),
		})
	}
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"qr_codes"},
		[]string{"id", "code", "batch_id", "status", "item_id", "linked_at", "invalidated_at", "invalid_reason"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return r.fail(err, "failed to create qr codes")
	}
	return nil
}

func (r *QRCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*qrcode.QRCode, error) {
	q, err := scanCode(r.db.QueryRow(ctx, `SELECT `+codeColumns+` FROM qr_codes WHERE id = $1`, id))
	if err != nil {
		return nil, r.fail(err, "qr code not found")
	}
	return q, nil
}

func (r *QRCodeRepository) FindByCode(ctx context.Context, code string) (*qrcode.QRCode, error) {
	q, err := scanCode(r.db.QueryRow(ctx, `SELECT `+codeColumns+` FROM qr_codes WHERE code = $1`, code))
	if err != nil {
		return nil, r.fail(err, "qr code not found")
	}
	return q, nil
}

func (r *QRCodeRepository) FindLinkedByItem(ctx context.Context, itemID uuid.UUID) (*qrcode.QRCode, error) {
	q, err := scanCode(r.db.QueryRow(ctx, `
SELECT `+codeColumns+` FROM qr_codes WHERE item_id = $1 AND status = 'LINKED' LIMIT 1`, itemID))
	if err != nil {
		return nil, r.fail(err, "linked qr code not found")
	}
	return q, nil
}

func (r *QRCodeRepository) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*qrcode.QRCode, error) {
	rows, err := r.db.Query(ctx, `SELECT `+codeColumns+` FROM qr_codes WHERE batch_id = $1 ORDER BY code`, batchID)
	if err != nil {
		return nil, r.fail(err, "failed to list qr codes")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*qrcode.QRCode, error) {
		return scanCode(row)
	})
	if err != nil {
		return nil, r.fail(err, "failed to read qr codes")
	}
	return out, nil
}

func (r *QRCodeRepository) Update(ctx context.Context, q *qrcode.QRCode, expected qrcode.Status) error {
	return r.execOne(ctx, "qr_codes", q.ID(), "qr code", `
UPDATE qr_codes
SET status = $2, item_id = $3, linked_at = $4, invalidated_at = $5, invalid_reason = $6
WHERE id = $1 AND status = $7`,
		q.ID(), string(q.Status()), pgconv.UUIDPtrToPgtype(q.ItemID()),
		pgconv.TimePtrToPgtype(q.LinkedAt()), pgconv.TimePtrToPgtype(q.InvalidatedAt()),
		q.InvalidReason(), string(expected))
}
