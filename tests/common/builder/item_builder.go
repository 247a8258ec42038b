//go:build unit || integration || e2e

package builder

import (
	"time"

	"preloved-market/internal/domain/item"
	"preloved-market/internal/domain/seller"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	OwnerID uuid.UUID
	Title   string
	Now     time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		OwnerID: uuid.New(),
		Title:   "Vintage denim jacket",
		Now:     time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.OwnerID, b.Title, b.Now)
}

func (b *ItemBuilder) MustBuild() *item.Item {
	it, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return it
}

// ActiveSeller returns a profile that passed identity and payout verification.
func ActiveSeller() *seller.Profile {
	return seller.ReconstructProfile(uuid.New(), "Closet Clearout", true, true)
}

func UnverifiedSeller() *seller.Profile {
	return seller.ReconstructProfile(uuid.New(), "Fresh Seller", true, false)
}
