package components

import (
	"preloved-market/internal/handler"
	"preloved-market/internal/handler/api"
	"preloved-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMarketHandler,
		api.NewEnrollmentHandler,
		api.NewQRCodeHandler,
		api.NewItemHandler,
		api.NewCartHandler,
		api.NewSellerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
