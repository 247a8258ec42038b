package handler

import (
	"log/slog"
	"net/http"

	"preloved-market/internal/handler/api"
	"preloved-market/internal/handler/middleware"
	"preloved-market/internal/handler/validation"
	"preloved-market/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Market     *api.MarketHandler
	Enrollment *api.EnrollmentHandler
	QRCode     *api.QRCodeHandler
	Item       *api.ItemHandler
	Cart       *api.CartHandler
	Seller     *api.SellerHandler
	Auth       *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.PrometheusMiddleware())
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")

	// capacity display is public, like the market page it is shown on
	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/markets/:id/capacity", Handler: h.Market.DisplayCapacity},
	})

	authed := apiGroup.Group("")
	authed.Use(h.Auth.RequireAuth())
	staff := []gin.HandlerFunc{h.Auth.RequireStaff()}

	markets := authed.Group("/markets")
	{
		addRoutes(markets, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Market.List},
			{Method: http.MethodPost, Path: "", Handler: h.Market.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Market.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Market.Delete},
			{Method: http.MethodPatch, Path: "/:id/capacity", Handler: h.Market.UpdateCapacity},
			{Method: http.MethodGet, Path: "/:id/capacity/live", Handler: h.Market.LiveCapacity},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Market.ChangeStatus},
			{Method: http.MethodPost, Path: "/:id/enrollments", Handler: h.Enrollment.Register},
			{Method: http.MethodDelete, Path: "/:id/enrollments", Handler: h.Enrollment.Unregister},
			{Method: http.MethodPost, Path: "/:id/hanger-rentals", Handler: h.Enrollment.RentHangers},
			{Method: http.MethodGet, Path: "/:id/quota", Handler: h.Enrollment.Quota},
			{Method: http.MethodPost, Path: "/:id/qr-batches", Handler: h.QRCode.MintBatch},
		})
	}

	rentals := authed.Group("/hanger-rentals")
	{
		addRoutes(rentals, []route{
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Enrollment.ConfirmRental},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Enrollment.CancelRental},
		})
	}

	codes := authed.Group("")
	{
		addRoutes(codes, []route{
			{Method: http.MethodGet, Path: "/qr-codes/lookup", Handler: h.QRCode.Lookup},
			{Method: http.MethodPost, Path: "/qr-codes/:id/invalidate", Handler: h.QRCode.Invalidate},
			{Method: http.MethodGet, Path: "/qr-batches/:id/codes", Handler: h.QRCode.ListBatchCodes},
		})
	}

	items := authed.Group("/items")
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Item.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Item.ListWardrobe},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Item.Get},
			{Method: http.MethodPost, Path: "/:id/link", Handler: h.Item.Link},
			{Method: http.MethodPost, Path: "/:id/withdraw", Handler: h.Item.Withdraw},
		})
	}

	cartGroup := authed.Group("/cart")
	{
		addRoutes(cartGroup, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.List},
			{Method: http.MethodPost, Path: "", Handler: h.Cart.Add},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Cart.Remove},
			{Method: http.MethodPost, Path: "/:id/extend", Handler: h.Cart.Extend},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Cart.Complete, Mw: staff},
		})
	}

	addRoutes(authed, []route{
		{Method: http.MethodPut, Path: "/sellers/:id", Handler: h.Seller.Sync},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
