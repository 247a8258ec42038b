package memstore

import (
	"context"
	"sort"
	"time"

	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/hanger"

	"github.com/google/uuid"
)

type enrollmentStore struct{ s *Store }

func (r enrollmentStore) Create(_ context.Context, e *enrollment.Enrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.enrollments {
		if row.e.MarketID() != e.MarketID() {
			continue
		}
		if row.e.SellerID() == e.SellerID() {
			return r.s.duplicate("enrollment already exists")
		}
		if row.e.Slot() == e.Slot() {
			return r.s.conflict("vendor slot already taken")
		}
	}
	r.s.enrollSeq++
	r.s.enrollments[e.ID()] = enrollmentRow{e: *e, seq: r.s.enrollSeq}
	return nil
}

func (r enrollmentStore) Find(_ context.Context, sellerID, marketID uuid.UUID) (*enrollment.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.enrollments {
		if row.e.SellerID() == sellerID && row.e.MarketID() == marketID {
			e := row.e
			return &e, nil
		}
	}
	return nil, r.s.notFound("enrollment not found")
}

func (r enrollmentStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.enrollments[id]; !ok {
		return r.s.notFound("enrollment not found")
	}
	delete(r.s.enrollments, id)
	return nil
}

func (r enrollmentStore) CountByMarket(_ context.Context, marketID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, row := range r.s.enrollments {
		if row.e.MarketID() == marketID {
			n++
		}
	}
	return n, nil
}

func (r enrollmentStore) ListByMarket(_ context.Context, marketID uuid.UUID) ([]*enrollment.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]enrollmentRow, 0)
	for _, row := range r.s.enrollments {
		if row.e.MarketID() == marketID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]*enrollment.Enrollment, 0, len(rows))
	for _, row := range rows {
		e := row.e
		out = append(out, &e)
	}
	return out, nil
}

type rentalStore struct{ s *Store }

func isCurrent(st hanger.Status) bool {
	return st == hanger.StatusPending || st == hanger.StatusConfirmed
}

func (r rentalStore) Create(_ context.Context, rental *hanger.Rental) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.rentals {
		if cur.SellerID() == rental.SellerID() && cur.MarketID() == rental.MarketID() && isCurrent(cur.Status()) {
			return r.s.duplicate("active hanger rental already exists")
		}
	}
	r.s.rentals[rental.ID()] = *rental
	return nil
}

func (r rentalStore) FindByID(_ context.Context, id uuid.UUID) (*hanger.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rental, ok := r.s.rentals[id]
	if !ok {
		return nil, r.s.notFound("hanger rental not found")
	}
	return &rental, nil
}

func (r rentalStore) FindCurrent(_ context.Context, sellerID, marketID uuid.UUID) (*hanger.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.rentals {
		if cur.SellerID() == sellerID && cur.MarketID() == marketID && isCurrent(cur.Status()) {
			return &cur, nil
		}
	}
	return nil, r.s.notFound("hanger rental not found")
}

func (r rentalStore) Update(_ context.Context, rental *hanger.Rental, expected hanger.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.rentals[rental.ID()]
	if !ok {
		return r.s.notFound("hanger rental not found")
	}
	if cur.Status() != expected {
		return r.s.conflict("hanger rental status changed")
	}
	r.s.rentals[rental.ID()] = *rental
	return nil
}

func (r rentalStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rentals[id]; !ok {
		return r.s.notFound("hanger rental not found")
	}
	delete(r.s.rentals, id)
	return nil
}

func (r rentalStore) SumActive(_ context.Context, marketID uuid.UUID, pendingCutoff time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := 0
	for _, cur := range r.s.rentals {
		if cur.MarketID() != marketID {
			continue
		}
		switch cur.Status() {
		case hanger.StatusConfirmed:
			sum += cur.HangerCount()
		case hanger.StatusPending:
			if cur.CreatedAt().After(pendingCutoff) {
				sum += cur.HangerCount()
			}
		}
	}
	return sum, nil
}

func (r rentalStore) ExpirePending(_ context.Context, pendingCutoff, now time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, cur := range r.s.rentals {
		if cur.Status() != hanger.StatusPending || cur.CreatedAt().After(pendingCutoff) {
			continue
		}
		if err := cur.Expire(now); err != nil {
			return n, err
		}
		r.s.rentals[id] = cur
		n++
	}
	return n, nil
}

func (r rentalStore) ListByMarket(_ context.Context, marketID uuid.UUID) ([]*hanger.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*hanger.Rental, 0)
	for _, cur := range r.s.rentals {
		if cur.MarketID() == marketID {
			cur := cur
			out = append(out, &cur)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}
