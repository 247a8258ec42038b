package memstore

import (
	"context"
	"sort"

	"preloved-market/internal/domain/qrcode"

	"github.com/google/uuid"
)

type batchStore struct{ s *Store }

func (r batchStore) Create(_ context.Context, b *qrcode.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.batches {
		if cur.Prefix() == b.Prefix() && cur.Number() == b.Number() {
			return r.s.duplicate("batch number already used for prefix")
		}
	}
	r.s.batches[b.ID()] = *b
	return nil
}

func (r batchStore) FindByID(_ context.Context, id uuid.UUID) (*qrcode.Batch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil, r.s.notFound("qr batch not found")
	}
	return &b, nil
}

func (r batchStore) CountByPrefix(_ context.Context, prefix string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, b := range r.s.batches {
		if b.Prefix() == prefix {
			n++
		}
	}
	return n, nil
}

func (r batchStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.batches[id]; !ok {
		return r.s.notFound("qr batch not found")
	}
	delete(r.s.batches, id)
	return nil
}

type codeStore struct{ s *Store }

func (r codeStore) CreateMany(_ context.Context, codes []*qrcode.QRCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := make(map[string]struct{}, len(r.s.codes)+len(codes))
	for _, cur := range r.s.codes {
		seen[cur.Code().String()] = struct{}{}
	}
	for _, q := range codes {
		if _, ok := seen[q.Code().String()]; ok {
			return r.s.duplicate("qr code already exists")
		}
		seen[q.Code().String()] = struct{}{}
	}
	for _, q := range codes {
		r.s.codes[q.ID()] = *q
	}
	return nil
}

func (r codeStore) FindByID(_ context.Context, id uuid.UUID) (*qrcode.QRCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.codes[id]
	if !ok {
		return nil, r.s.notFound("qr code not found")
	}
	return &q, nil
}

func (r codeStore) FindByCode(_ context.Context, code string) (*qrcode.QRCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, q := range r.s.codes {
		if q.Code().String() == code {
			return &q, nil
		}
	}
	return nil, r.s.notFound("qr code not found")
}

func (r codeStore) FindLinkedByItem(_ context.Context, itemID uuid.UUID) (*qrcode.QRCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, q := range r.s.codes {
		if q.Status() == qrcode.StatusLinked && q.ItemID() != nil && *q.ItemID() == itemID {
			return &q, nil
		}
	}
	return nil, r.s.notFound("no linked qr code for item")
}

func (r codeStore) ListByBatch(_ context.Context, batchID uuid.UUID) ([]*qrcode.QRCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*qrcode.QRCode, 0)
	for _, q := range r.s.codes {
		if q.BatchID() == batchID {
			q := q
			out = append(out, &q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code().String() < out[j].Code().String() })
	return out, nil
}

func (r codeStore) Update(_ context.Context, q *qrcode.QRCode, expected qrcode.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.codes[q.ID()]
	if !ok {
		return r.s.notFound("qr code not found")
	}
	if cur.Status() != expected {
		return r.s.conflict("qr code status changed")
	}
	r.s.codes[q.ID()] = *q
	return nil
}
