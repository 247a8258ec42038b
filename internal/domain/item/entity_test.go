//go:build unit

package item_test

import (
	"strings"
	"testing"
	"time"

	"preloved-market/internal/domain/item"
	"preloved-market/internal/pkg/errs"
	"preloved-market/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ItemBuilder)
	errIs  error
}

func TestNewItem(t *testing.T) {
	runCases(t, []testCase{
		{name: "valid title", mutate: func(b *builder.ItemBuilder) {}},
		{name: "empty title", mutate: func(b *builder.ItemBuilder) { b.Title = "" }, errIs: errs.ErrValidation},
		{
			name:   "title too long",
			mutate: func(b *builder.ItemBuilder) { b.Title = strings.Repeat("a", 201) },
			errIs:  errs.ErrValidation,
		},
	})

	it := builder.NewItemBuilder().MustBuild()
	assert.Equal(t, item.StatusWardrobe, it.Status())
	assert.Nil(t, it.MarketID())
	assert.Nil(t, it.SellingPrice())
}

func TestItemLifecycle(t *testing.T) {
	now := time.Now()
	marketID := uuid.New()
	price := decimal.RequireFromString("24.50")

	t.Run("rack sets market and price", func(t *testing.T) {
		it := builder.NewItemBuilder().MustBuild()
		require.NoError(t, it.PlaceOnRack(marketID, price, now))

		assert.Equal(t, item.StatusRack, it.Status())
		require.NotNil(t, it.MarketID())
		assert.Equal(t, marketID, *it.MarketID())
		require.NotNil(t, it.SellingPrice())
		assert.True(t, price.Equal(*it.SellingPrice()))
	})

	t.Run("rejects non positive price", func(t *testing.T) {
		it := builder.NewItemBuilder().MustBuild()
		assert.ErrorIs(t, it.PlaceOnRack(marketID, decimal.Zero, now), errs.ErrInvalidPrice)
		assert.Equal(t, item.StatusWardrobe, it.Status())
	})

	t.Run("withdraw clears listing", func(t *testing.T) {
		it := builder.NewItemBuilder().MustBuild()
		require.NoError(t, it.PlaceOnRack(marketID, price, now))
		require.NoError(t, it.Withdraw(now))

		assert.Equal(t, item.StatusWardrobe, it.Status())
		assert.Nil(t, it.MarketID())
		assert.Nil(t, it.SellingPrice())
		assert.Nil(t, it.ListedAt())
	})

	t.Run("wardrobe item cannot be sold", func(t *testing.T) {
		it := builder.NewItemBuilder().MustBuild()
		assert.ErrorIs(t, it.MarkSold(uuid.New(), now), errs.ErrItemNotOnRack)
	})

	t.Run("sold is terminal and keeps listing", func(t *testing.T) {
		it := builder.NewItemBuilder().MustBuild()
		buyer := uuid.New()
		require.NoError(t, it.PlaceOnRack(marketID, price, now))
		require.NoError(t, it.MarkSold(buyer, now))

		assert.Equal(t, item.StatusSold, it.Status())
		if diff := cmp.Diff(&buyer, it.BuyerID()); diff != "" {
			t.Errorf("buyer mismatch (-want +got):\n%s", diff)
		}
		assert.NotNil(t, it.SellingPrice())
		assert.ErrorIs(t, it.PlaceOnRack(marketID, price, now), errs.ErrWrongItemStatus)
		assert.ErrorIs(t, it.Withdraw(now), errs.ErrItemNotOnRack)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
