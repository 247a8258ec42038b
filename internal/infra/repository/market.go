package repository

import (
	"context"
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/seller"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const marketColumns = `id, name, status, max_vendors, max_hangers, starts_at, ends_at, created_at, updated_at`

type MarketRepository struct{ base }

func scanMarket(row pgx.Row) (*market.Market, error) {
	var (
		id                     uuid.UUID
		name, status           string
		maxVendors, maxHangers int
		startsAt, endsAt       time.Time
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &name, &status, &maxVendors, &maxHangers, &startsAt, &endsAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return market.ReconstructMarket(id, name, market.Status(status), maxVendors, maxHangers, startsAt, endsAt, createdAt, updatedAt), nil
}

func (r *MarketRepository) Create(ctx context.Context, m *market.Market) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO markets (`+marketColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID(), m.Name(), string(m.Status()), m.MaxVendors(), m.MaxHangers(),
		m.StartsAt(), m.EndsAt(), m.CreatedAt(), m.UpdatedAt())
	if err != nil {
		return r.fail(err, "failed to create market")
	}
	return nil
}

func (r *MarketRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.Market, error) {
	m, err := scanMarket(r.db.QueryRow(ctx, `SELECT `+marketColumns+` FROM markets WHERE id = $1`, id))
	if err != nil {
		return nil, r.fail(err, "market not found")
	}
	return m, nil
}

func (r *MarketRepository) List(ctx context.Context) ([]*market.Market, error) {
	rows, err := r.db.Query(ctx, `SELECT `+marketColumns+` FROM markets ORDER BY starts_at, id`)
	if err != nil {
		return nil, r.fail(err, "failed to list markets")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*market.Market, error) {
		return scanMarket(row)
	})
	if err != nil {
		return nil, r.fail(err, "failed to read markets")
	}
	return out, nil
}

func (r *MarketRepository) Update(ctx context.Context, m *market.Market, expected market.Status) error {
	return r.execOne(ctx, "markets", m.ID(), "market", `
UPDATE markets
SET name = $2, status = $3, max_vendors = $4, max_hangers = $5, starts_at = $6, ends_at = $7, updated_at = $8
WHERE id = $1 AND status = $9`,
		m.ID(), m.Name(), string(m.Status()), m.MaxVendors(), m.MaxHangers(),
		m.StartsAt(), m.EndsAt(), m.UpdatedAt(), string(expected))
}

func (r *MarketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.deleteOne(ctx, "markets", id, "market")
}

type SellerRepository struct{ base }

func (r *SellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*seller.Profile, error) {
	var (
		displayName          string
		identityOK, payoutOK bool
	)
	err := r.db.QueryRow(ctx, `
SELECT display_name, identity_verified, payout_verified FROM seller_profiles WHERE id = $1`, id).
		Scan(&displayName, &identityOK, &payoutOK)
	if err != nil {
		return nil, r.fail(err, "seller profile not found")
	}
	return seller.ReconstructProfile(id, displayName, identityOK, payoutOK), nil
}

func (r *SellerRepository) Save(ctx context.Context, p *seller.Profile) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO seller_profiles (id, display_name, identity_verified, payout_verified, updated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (id) DO UPDATE
SET display_name = EXCLUDED.display_name,
    identity_verified = EXCLUDED.identity_verified,
    payout_verified = EXCLUDED.payout_verified,
    updated_at = NOW()`,
		p.ID(), p.DisplayName(), p.IdentityVerified(), p.PayoutVerified())
	if err != nil {
		return r.fail(err, "failed to save seller profile")
	}
	return nil
}
