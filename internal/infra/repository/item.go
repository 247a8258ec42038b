package repository

import (
	"context"
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/item"
	"preloved-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemColumns = `id, owner_id, title, status, market_id, listed_at, selling_price, buyer_id, sold_at, created_at, updated_at`

type ItemRepository struct{ base }

func scanItem(row pgx.Row) (*item.Item, error) {
	var (
		id, ownerID          uuid.UUID
		title, status        string
		marketID, buyerID    pgtype.UUID
		listedAt, soldAt     pgtype.Timestamptz
		price                pgtype.Numeric
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &ownerID, &title, &status, &marketID, &listedAt, &price, &buyerID, &soldAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	sellingPrice, err := pgconv.DecimalPtrFromNumeric(price)
	if err != nil {
		return nil, err
	}
	return item.ReconstructItem(
		id, ownerID, title, item.Status(status),
		pgconv.UUIDPtrFromPgtype(marketID), pgconv.TimePtrFromPgtype(listedAt),
		sellingPrice,
		pgconv.UUIDPtrFromPgtype(buyerID), pgconv.TimePtrFromPgtype(soldAt),
		createdAt, updatedAt,
	), nil
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO items (`+itemColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		it.ID(), it.OwnerID(), it.Title(), string(it.Status()),
		pgconv.UUIDPtrToPgtype(it.MarketID()), pgconv.TimePtrToPgtype(it.ListedAt()),
		pgconv.DecimalPtrToNumeric(it.SellingPrice()),
		pgconv.UUIDPtrToPgtype(it.BuyerID()), pgconv.TimePtrToPgtype(it.SoldAt()),
		it.CreatedAt(), it.UpdatedAt())
	if err != nil {
		return r.fail(err, "failed to create item")
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		return nil, r.fail(err, "item not found")
	}
	return it, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+itemColumns+` FROM items WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, r.fail(err, "failed to list items")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*item.Item, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, r.fail(err, "failed to read items")
	}
	return out, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item, expected item.Status) error {
	return r.execOne(ctx, "items", it.ID(), "item", `
UPDATE items
SET title = $2, status = $3, market_id = $4, listed_at = $5, selling_price = $6,
    buyer_id = $7, sold_at = $8, updated_at = $9
WHERE id = $1 AND status = $10`,
		it.ID(), it.Title(), string(it.Status()),
		pgconv.UUIDPtrToPgtype(it.MarketID()), pgconv.TimePtrToPgtype(it.ListedAt()),
		pgconv.DecimalPtrToNumeric(it.SellingPrice()),
		pgconv.UUIDPtrToPgtype(it.BuyerID()), pgconv.TimePtrToPgtype(it.SoldAt()),
		it.UpdatedAt(), string(expected))
}

func (r *ItemRepository) CountOnRack(ctx context.Context, ownerID, marketID uuid.UUID) (int, error) {
	return r.count(ctx, "rack items", `
SELECT COUNT(*) FROM items WHERE owner_id = $1 AND market_id = $2 AND status = 'RACK'`, ownerID, marketID)
}

const cartColumns = `id, buyer_id, item_id, created_at, expires_at`

type CartRepository struct{ base }

func scanCart(row pgx.Row) (*cart.Reservation, error) {
	var (
		id, buyerID, itemID  uuid.UUID
		createdAt, expiresAt time.Time
	)
	if err := row.Scan(&id, &buyerID, &itemID, &createdAt, &expiresAt); err != nil {
		return nil, err
	}
	return cart.ReconstructReservation(id, buyerID, itemID, createdAt, expiresAt), nil
}

func (r *CartRepository) Create(ctx context.Context, res *cart.Reservation) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO cart_reservations (`+cartColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		res.ID(), res.BuyerID(), res.ItemID(), res.CreatedAt(), res.ExpiresAt())
	if err != nil {
		return r.fail(err, "failed to create cart reservation")
	}
	return nil
}

func (r *CartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Reservation, error) {
	res, err := scanCart(r.db.QueryRow(ctx, `SELECT `+cartColumns+` FROM cart_reservations WHERE id = $1`, id))
	if err != nil {
		return nil, r.fail(err, "cart reservation not found")
	}
	return res, nil
}

func (r *CartRepository) FindByItem(ctx context.Context, itemID uuid.UUID) (*cart.Reservation, error) {
	res, err := scanCart(r.db.QueryRow(ctx, `SELECT `+cartColumns+` FROM cart_reservations WHERE item_id = $1`, itemID))
	if err != nil {
		return nil, r.fail(err, "cart reservation not found")
	}
	return res, nil
}

func (r *CartRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*cart.Reservation, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+cartColumns+` FROM cart_reservations WHERE buyer_id = $1 ORDER BY created_at, id`, buyerID)
	if err != nil {
		return nil, r.fail(err, "failed to list cart reservations")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*cart.Reservation, error) {
		return scanCart(row)
	})
	if err != nil {
		return nil, r.fail(err, "failed to read cart reservations")
	}
	return out, nil
}

func (r *CartRepository) Update(ctx context.Context, res *cart.Reservation, expectedExpiry time.Time) error {
	return r.execOne(ctx, "cart_reservations", res.ID(), "cart reservation", `
UPDATE cart_reservations SET expires_at = $2 WHERE id = $1 AND expires_at = $3`,
		res.ID(), res.ExpiresAt(), expectedExpiry)
}

func (r *CartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.deleteOne(ctx, "cart_reservations", id, "cart reservation")
}

func (r *CartRepository) DeleteIfExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_reservations WHERE id = $1 AND expires_at <= $2`, id, now)
	if err != nil {
		return false, r.fail(err, "failed to release expired cart reservation")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CartRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_reservations WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, r.fail(err, "failed to sweep expired cart reservations")
	}
	return int(tag.RowsAffected()), nil
}
