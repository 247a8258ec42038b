package bootstrap

import (
	"context"
	"log/slog"

	"preloved-market/internal/infra/cache"
	"preloved-market/internal/infra/db"
	"preloved-market/internal/infra/memstore"
	"preloved-market/internal/infra/repository"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
		NewCapacityCache,
	),
)

// NewStore selects the backing store from STORE_DRIVER.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Store, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		return memstore.New(logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.RequestTimeout*3)
	defer cancel()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return repository.NewStore(pool, logger), nil
}

// NewCapacityCache falls back to no caching when REDIS_ADDR is unset or unreachable.
func NewCapacityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.CapacityCache {
	if cfg.Redis.Addr == "" {
		return cache.NewNoop()
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Warn("Capacity cache disabled", "addr", cfg.Redis.Addr, "error", err)
		return cache.NewNoop()
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisCapacityCache(client, cfg.Redis.CacheTTL, logger)
}
