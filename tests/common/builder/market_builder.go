//go:build unit || integration || e2e

package builder

import (
	"time"

	"preloved-market/internal/domain/market"
	reqdto "preloved-market/internal/handler/dto/request"
)

type MarketBuilder struct {
	Name             string
	MaxVendors       int
	MaxHangers       *int
	HangersPerVendor int
	StartsAt         time.Time
	EndsAt           time.Time
	Now              time.Time
}

func NewMarketBuilder() *MarketBuilder {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return &MarketBuilder{
		Name:             "Spring Preloved Market",
		MaxVendors:       10,
		HangersPerVendor: 2,
		StartsAt:         now.Add(7 * 24 * time.Hour),
		EndsAt:           now.Add(7*24*time.Hour + 8*time.Hour),
		Now:              now,
	}
}

func (b *MarketBuilder) With(mutate func(*MarketBuilder)) *MarketBuilder {
	mutate(b)
	return b
}

func (b *MarketBuilder) WithCapacity(maxVendors, maxHangers int) *MarketBuilder {
	b.MaxVendors = maxVendors
	b.MaxHangers = &maxHangers
	return b
}

func (b *MarketBuilder) BuildDomain() (*market.Market, error) {
	return market.NewMarket(b.Name, b.MaxVendors, b.MaxHangers, b.HangersPerVendor, b.StartsAt, b.EndsAt, b.Now)
}

// BuildActive returns a market already opened for enrollment.
func (b *MarketBuilder) BuildActive() *market.Market {
	m, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	if err := m.ChangeStatus(market.StatusActive, b.Now); err != nil {
		panic(err)
	}
	return m
}

func (b *MarketBuilder) BuildCreateRequestDTO() reqdto.CreateMarketRequest {
	return reqdto.CreateMarketRequest{
		Name:       b.Name,
		MaxVendors: b.MaxVendors,
		MaxHangers: b.MaxHangers,
		StartsAt:   b.StartsAt,
		EndsAt:     b.EndsAt,
	}
}
