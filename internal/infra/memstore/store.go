// Package memstore is an in-process Store with the same per-record atomicity,
// uniqueness and compare-and-set semantics as the Postgres repositories.
package memstore

import (
	"log/slog"
	"sync"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/domain/enrollment"
	"preloved-market/internal/domain/hanger"
	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/market"
	"preloved-market/internal/domain/qrcode"
	"preloved-market/internal/domain/seller"
	"preloved-market/internal/infra"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type enrollmentRow struct {
	e   enrollment.Enrollment
	seq int64
}

type Store struct {
	mu     sync.Mutex
	logger *slog.Logger

	markets     map[uuid.UUID]market.Market
	sellers     map[uuid.UUID]seller.Profile
	enrollments map[uuid.UUID]enrollmentRow
	enrollSeq   int64
	rentals     map[uuid.UUID]hanger.Rental
	batches     map[uuid.UUID]qrcode.Batch
	codes       map[uuid.UUID]qrcode.QRCode
	items       map[uuid.UUID]item.Item
	carts       map[uuid.UUID]cart.Reservation
}

var _ shared.Store = (*Store)(nil)

func New(logger *slog.Logger) *Store {
	return &Store{
		logger:      logger,
		markets:     make(map[uuid.UUID]market.Market),
		sellers:     make(map[uuid.UUID]seller.Profile),
		enrollments: make(map[uuid.UUID]enrollmentRow),
		rentals:     make(map[uuid.UUID]hanger.Rental),
		batches:     make(map[uuid.UUID]qrcode.Batch),
		codes:       make(map[uuid.UUID]qrcode.QRCode),
		items:       make(map[uuid.UUID]item.Item),
		carts:       make(map[uuid.UUID]cart.Reservation),
	}
}

func (s *Store) Markets() shared.MarketStore         { return marketStore{s} }
func (s *Store) Sellers() shared.SellerStore         { return sellerStore{s} }
func (s *Store) Enrollments() shared.EnrollmentStore { return enrollmentStore{s} }
func (s *Store) Rentals() shared.HangerRentalStore   { return rentalStore{s} }
func (s *Store) QRBatches() shared.QRBatchStore      { return batchStore{s} }
func (s *Store) QRCodes() shared.QRCodeStore         { return codeStore{s} }
func (s *Store) Items() shared.ItemStore             { return itemStore{s} }
func (s *Store) Carts() shared.CartStore             { return cartStore{s} }

func (s *Store) notFound(msg string) error {
	return infra.WrapRepoErr(s.logger, infra.KindNotFound, msg, nil)
}

func (s *Store) duplicate(msg string) error {
	return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, msg, nil)
}

func (s *Store) conflict(msg string) error {
	return infra.WrapRepoErr(s.logger, infra.KindConflict, msg, nil)
}
