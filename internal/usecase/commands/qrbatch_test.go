//go:build unit

package commands_test

import (
	"context"
	"testing"

	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/domain/user"
	"preloved-market/internal/infra"
	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintBatch(t *testing.T) {
	f := newFixture(t, nil)
	m := f.openMarket(t, 2, 4)

	first, err := f.qrcodes.MintBatch(f.ctx(), staff, m.ID(), "spring", 3)
	require.NoError(t, err)
	second, err := f.qrcodes.MintBatch(f.ctx(), staff, m.ID(), "SPRING", 2)
	require.NoError(t, err)
	other, err := f.qrcodes.MintBatch(f.ctx(), staff, m.ID(), "fall_24", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Batch.Number())
	assert.Equal(t, 2, second.Batch.Number())
	assert.Equal(t, 1, other.Batch.Number(), "numbering is per prefix")
	assert.Equal(t, []string{"SPRING-1-00001", "SPRING-1-00002", "SPRING-1-00003"}, codeStrings(first.Codes))
	assert.Equal(t, []string{"SPRING-2-00001", "SPRING-2-00002"}, codeStrings(second.Codes))
	assert.Equal(t, []string{"FALL_24-1-00001"}, codeStrings(other.Codes))
	for _, c := range first.Codes {
		assert.Equal(t, qrcode.StatusUnused, c.Status())
		assert.Equal(t, first.Batch.ID(), c.BatchID())
	}

	stored, err := f.mem.QRCodes().ListByBatch(f.ctx(), second.Batch.ID())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestMintBatchRejects(t *testing.T) {
	tests := []struct {
		name     string
		actor    user.Actor
		marketID func(f *fixture) uuid.UUID
		prefix   string
		size     int
		want     *errs.DomainError
	}{
		{
			name:   "seller",
			actor:  user.Actor{ID: uuid.New(), Role: user.RoleSeller},
			prefix: "spring",
			size:   1,
			want:   errs.ErrNotAuthorized,
		},
		{
			name:   "prefix with separator",
			actor:  staff,
			prefix: "spring-sale",
			size:   1,
			want:   errs.ErrValidation,
		},
		{
			name:   "empty batch",
			actor:  staff,
			prefix: "spring",
			size:   0,
			want:   errs.ErrValidation,
		},
		{
			name:   "batch larger than the sequence width",
			actor:  staff,
			prefix: "spring",
			size:   qrcode.MaxBatchSize + 1,
			want:   errs.ErrValidation,
		},
		{
			name:     "unknown market",
			actor:    staff,
			marketID: func(*fixture) uuid.UUID { return uuid.New() },
			prefix:   "spring",
			size:     1,
			want:     errs.ErrMarketNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			marketID := f.openMarket(t, 1, 1).ID()
			if tt.marketID != nil {
				marketID = tt.marketID(f)
			}

			_, err := f.qrcodes.MintBatch(f.ctx(), tt.actor, marketID, tt.prefix, tt.size)

			requireCode(t, err, tt.want)
		})
	}
}

// collidingBatches reports every insert as a taken (prefix, number) pair.
type collidingBatches struct {
	shared.QRBatchStore
	creates int
}

func (c *collidingBatches) Create(context.Context, *qrcode.Batch) error {
	c.creates++
	return infra.RepositoryError{Kind: infra.KindDuplicateKey}
}

func TestMintBatchGivesUpAsTransientWhenNumbersKeepColliding(t *testing.T) {
	batches := &collidingBatches{}
	f := newFixture(t, func(s shared.Store) shared.Store {
		batches.QRBatchStore = s.QRBatches()
		return storeWith{Store: s, batches: batches}
	})
	m := f.openMarket(t, 1, 1)

	_, err := f.qrcodes.MintBatch(f.ctx(), staff, m.ID(), "spring", 2)

	requireCode(t, err, errs.ErrStoreUnavailable)
	assert.Equal(t, 3, batches.creates)
	n, err := f.mem.QRBatches().CountByPrefix(f.ctx(), "SPRING")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInvalidateQRCode(t *testing.T) {
	f := newFixture(t, nil)
	env := newLinkEnv(t, f)
	f.listed(t, env.seller, env.codes[0])

	_, err := f.qrcodes.InvalidateQRCode(f.ctx(), staff, env.codes[0].ID(), "damaged")
	requireCode(t, err, errs.ErrQRAlreadyUsed)

	_, err = f.qrcodes.InvalidateQRCode(f.ctx(), user.Actor{ID: env.seller, Role: user.RoleSeller}, env.codes[1].ID(), "damaged")
	requireCode(t, err, errs.ErrNotAuthorized)

	qr, err := f.qrcodes.InvalidateQRCode(f.ctx(), staff, env.codes[1].ID(), "damaged")
	require.NoError(t, err)
	assert.Equal(t, qrcode.StatusInvalid, qr.Status())
	assert.Equal(t, "damaged", qr.InvalidReason())
	require.NotNil(t, qr.InvalidatedAt())
	assert.Equal(t, t0, *qr.InvalidatedAt())

	_, err = f.qrcodes.InvalidateQRCode(f.ctx(), staff, env.codes[1].ID(), "again")
	requireCode(t, err, errs.ErrQRInvalidated)

	_, err = f.qrcodes.InvalidateQRCode(f.ctx(), staff, uuid.New(), "lost")
	requireCode(t, err, errs.ErrQRCodeNotFound)
}

func codeStrings(codes []*qrcode.QRCode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.Code().String()
	}
	return out
}
