package handlers

import (
	"log/slog"
	"time"

	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/middleware"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	logger *slog.Logger,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(cors.Default())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		// Fall back to a safe default when the configured rate is malformed.
		rate = limiter.Rate{Period: time.Minute, Limit: 300}
	}
	rateLimiter := limiter.New(memory.NewStore(), rate)
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter))

	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerTransactionRoutes(v1, services.Ledger)
	registerReportingRoutes(v1, services.Reporting)
	registerCategoryRoutes(v1, services.Category)
}
