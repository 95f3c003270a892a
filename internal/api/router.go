package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/lemonstand/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions carries the HTTP settings from config.ServerConfig.
type RouterOptions struct {
	RateLimitPerMinute int
	AllowedOrigins     []string
	RequestTimeout     time.Duration
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS, RateLimiter).
//   - Answers CORS preflight before rate limiting, so preflights do not use the budget.
//   - Routes on the escaped path, so item names containing '/' are reachable as %2F.
//   - Attaches opts.RequestTimeout to every request context.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	// Item names may contain '/', sent as %2F; route on the escaped path.
	router.UseRawPath = true
	router.UnescapePathValues = true

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		cors.New(corsConfig(opts.AllowedOrigins)),
		middleware.RateLimiter(opts.RateLimitPerMinute),
	)

	// ─── Timeout ──────────────────────────────────
	if opts.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/stand", handler.GetStand)

		v1.GET("/menu", handler.ListMenu)
		v1.POST("/menu", handler.AddMenuItem)
		v1.GET("/menu/:item", handler.GetMenuItem)

		v1.GET("/sales", handler.ListSales)
		v1.POST("/sales", handler.RecordSales)
		v1.GET("/sales/:day/items/:item", handler.GetUnitsSoldFor)

		v1.GET("/items/:item/units", handler.GetTotalUnitsSold)
		v1.GET("/items/:item/profit", handler.GetItemProfit)
		v1.GET("/profit", handler.GetTotalProfit)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
