package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"checkout-engine/internal/handler/api"
	"checkout-engine/internal/handler/middleware"
	"checkout-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout    *api.CheckoutHandler
	Reservation *api.ReservationHandler
	Inventory   *api.InventoryHandler
	Pricing     *api.PricingHandler
	Audit       *api.AuditHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Actor())
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/checkout"), []route{
			{Method: http.MethodPost, Path: "/lines", Handler: h.Checkout.CheckoutLine},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "/expire", Handler: h.Reservation.Expire},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/commit", Handler: h.Reservation.Commit},
			{Method: http.MethodPost, Path: "/:id/release", Handler: h.Reservation.Release},
		})

		addRoutes(apiGroup.Group("/inventory"), []route{
			{Method: http.MethodGet, Path: "/variants/:variantId", Handler: h.Inventory.GetAvailability},
			{Method: http.MethodGet, Path: "/variants/:variantId/locations/:locationId", Handler: h.Inventory.GetRecord},
			{Method: http.MethodPost, Path: "/shipments", Handler: h.Inventory.RegisterShipment},
			{Method: http.MethodGet, Path: "/shipments/:id", Handler: h.Inventory.GetShipment},
			{Method: http.MethodPost, Path: "/shipments/:id/receive", Handler: h.Inventory.ReceiveShipment},
			{Method: http.MethodPost, Path: "/shipments/:id/cancel", Handler: h.Inventory.CancelShipment},
			{Method: http.MethodPost, Path: "/adjustments", Handler: h.Inventory.AdjustStock},
		})

		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodGet, Path: "/variants/:id/quote", Handler: h.Pricing.Quote},
			{Method: http.MethodGet, Path: "/variants/:id/rules", Handler: h.Pricing.ActiveRules},
			{Method: http.MethodPut, Path: "/price-books/:id", Handler: h.Pricing.PutPriceBook},
			{Method: http.MethodPut, Path: "/campaigns/:id", Handler: h.Pricing.PutCampaign},
			{Method: http.MethodPut, Path: "/promotions/:id", Handler: h.Pricing.PutPromotion},
		})

		addRoutes(apiGroup.Group("/audit"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Audit.List},
		})
	}
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
