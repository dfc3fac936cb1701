package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/use-agent/holdcalc/api/handler"
	"github.com/use-agent/holdcalc/api/middleware"
	"github.com/use-agent/holdcalc/cache"
	"github.com/use-agent/holdcalc/calculator"
	"github.com/use-agent/holdcalc/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → Metrics
//	API:     Auth (if enabled) → RateLimit
//
// Health and metrics endpoints are intentionally outside auth so monitoring
// probes always work.
func NewRouter(calc *calculator.Calculator, cfg *config.Config, cc *cache.Cache, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	// Health endpoint is always open.
	v1.GET("/health", handler.Health(calc, startTime))

	// Protected group: auth and rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	// Calculate
	protected.POST("/calculate", handler.Calculate(calc, cc))

	// Batch
	protected.POST("/batch/calculate", handler.PostBatch(calc, cfg.Batch, cfg.Webhook.Secret))
	protected.GET("/batch/:id", handler.GetBatch())

	return r
}
