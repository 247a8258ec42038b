package components

import (
	"preloved-market/internal/pkg/clock"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/usecase/commands"
	"preloved-market/internal/usecase/queries"
	"preloved-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPolicy,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMarketQueries,
		queries.NewItemQueries,
		queries.NewCartQueries,
		func(store shared.Store, cache shared.CapacityCache, clk clock.Clock, p commands.Policy) queries.CapacityQueries {
			return queries.NewCapacityQueries(store, cache, clk, p.HangerPendingTTL)
		},
		func(store shared.Store, clk clock.Clock, p commands.Policy) queries.QuotaQueries {
			return queries.NewQuotaQueries(store, clk, p.HangerPendingTTL)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMarketUseCase,
		commands.NewSellerUseCase,
		commands.NewEnrollmentUseCase,
		commands.NewHangerUseCase,
		commands.NewQRCodeUseCase,
		commands.NewItemUseCase,
		commands.NewCartUseCase,
	),
)

func NewPolicy(cfg config.Config) commands.Policy {
	p := commands.DefaultPolicy()
	if cfg.Engine.CartHoldWindow > 0 {
		p.CartHoldWindow = cfg.Engine.CartHoldWindow
	}
	if cfg.Engine.CartExtension > 0 {
		p.CartExtension = cfg.Engine.CartExtension
	}
	if cfg.Engine.HangerPendingTTL > 0 {
		p.HangerPendingTTL = cfg.Engine.HangerPendingTTL
	}
	if cfg.Engine.DefaultHangersPerVendor > 0 {
		p.DefaultHangersPerVendor = cfg.Engine.DefaultHangersPerVendor
	}
	return p
}
