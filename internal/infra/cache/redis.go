// Package cache holds the display-only capacity snapshot cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/pkg/metrics"
	"preloved-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const (
	keyPrefix   = "capacity:"
	breakerName = "capacity_cache"
)

// RedisCapacityCache never fails a caller: redis errors degrade to a miss, and the
// breaker stops hammering an unhealthy redis.
type RedisCapacityCache struct {
	client  redis.Cmdable
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
	logger  *slog.Logger
}

var _ shared.CapacityCache = (*RedisCapacityCache)(nil)

func NewRedisCapacityCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisCapacityCache {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return &RedisCapacityCache{client: client, breaker: breaker, ttl: ttl, logger: logger}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}

func key(marketID uuid.UUID) string {
	return keyPrefix + marketID.String()
}

func (c *RedisCapacityCache) Get(ctx context.Context, marketID uuid.UUID) (market.Capacity, bool) {
	res, err := c.breaker.Execute(func() (any, error) {
		b, err := c.client.Get(ctx, key(marketID)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		metrics.CapacityCacheRequests.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "capacity cache read failed", slog.String("error", err.Error()))
		return market.Capacity{}, false
	}
	b, _ := res.([]byte)
	if b == nil {
		metrics.CapacityCacheRequests.WithLabelValues("miss").Inc()
		return market.Capacity{}, false
	}

	var snap market.Capacity
	if err := json.Unmarshal(b, &snap); err != nil {
		metrics.CapacityCacheRequests.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "capacity cache entry unreadable", slog.String("error", err.Error()))
		return market.Capacity{}, false
	}
	metrics.CapacityCacheRequests.WithLabelValues("hit").Inc()
	return snap, true
}

func (c *RedisCapacityCache) Set(ctx context.Context, marketID uuid.UUID, snap market.Capacity) {
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.client.Set(ctx, key(marketID), b, c.ttl).Err()
	})
	if err != nil {
		c.logger.WarnContext(ctx, "capacity cache write failed", slog.String("error", err.Error()))
	}
}

func (c *RedisCapacityCache) Invalidate(ctx context.Context, marketID uuid.UUID) {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.client.Del(ctx, key(marketID)).Err()
	})
	if err != nil {
		// The entry still expires on its own within the TTL.
		c.logger.WarnContext(ctx, "capacity cache invalidation failed", slog.String("error", err.Error()))
	}
}
