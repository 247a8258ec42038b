package cache

import (
	"context"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// Noop disables display caching; every display read is computed live.
type Noop struct{}

var _ shared.CapacityCache = Noop{}

func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, uuid.UUID) (market.Capacity, bool) { return market.Capacity{}, false }
func (Noop) Set(context.Context, uuid.UUID, market.Capacity)        {}
func (Noop) Invalidate(context.Context, uuid.UUID)                  {}
