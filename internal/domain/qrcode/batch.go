package qrcode

import (
	"time"

	"preloved-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Batch is a numbered run of codes minted for one market.
type Batch struct {
	id        uuid.UUID
	marketID  uuid.UUID
	prefix    string
	number    int
	size      int
	createdAt time.Time
}

func NewBatch(marketID uuid.UUID, prefix string, number, size int, now time.Time) (*Batch, error) {
	p, err := NormalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	if size <= 0 || size > MaxBatchSize {
		return nil, errs.WithDetailf(errs.ErrValidation, "batch size must be between 1 and %d", MaxBatchSize)
	}
	return &Batch{
		id:        uuid.New(),
		marketID:  marketID,
		prefix:    p,
		number:    number,
		size:      size,
		createdAt: now,
	}, nil
}

func ReconstructBatch(id, marketID uuid.UUID, prefix string, number, size int, createdAt time.Time) *Batch {
	return &Batch{id: id, marketID: marketID, prefix: prefix, number: number, size: size, createdAt: createdAt}
}

// Mint produces the batch's codes, all UNUSED.
func (b *Batch) Mint() []*QRCode {
	codes := make([]*QRCode, 0, b.size)
	for seq := 1; seq <= b.size; seq++ {
		codes = append(codes, &QRCode{
			id:      uuid.New(),
			code:    FormatCode(b.prefix, b.number, seq),
			batchID: b.id,
			status:  StatusUnused,
		})
	}
	return codes
}

// HasMarket reports whether the batch resolves to a market.
func (b *Batch) HasMarket() bool {
	return b.marketID != uuid.Nil
}

func (b *Batch) ID() uuid.UUID        { return b.id }
func (b *Batch) MarketID() uuid.UUID  { return b.marketID }
func (b *Batch) Prefix() string       { return b.prefix }
func (b *Batch) Number() int          { return b.number }
func (b *Batch) Size() int            { return b.size }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }
