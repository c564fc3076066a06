package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/ca-io-systems/YT-Trends/internal/handler"
	"github.com/ca-io-systems/YT-Trends/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Trending   *handler.TrendingHandler
	Categories *handler.CategoryHandler
	Stats      *handler.StatsHandler
	Summary    *handler.SummaryHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	trendingLimit := middleware.NewTrendingRateLimiter()
	statsLimit := middleware.NewStatsRateLimiter()
	summaryLimit := middleware.NewSummaryRateLimiter()

	api := app.Group("/api")

	api.Get("/trending", trendingLimit.Handler(), h.Trending.GetTrending)
	api.Get("/categories", trendingLimit.Handler(), h.Categories.GetCategories)
	api.Get("/stats", statsLimit.Handler(), h.Stats.GetStats)
	api.Post("/summary", summaryLimit.Handler(), h.Summary.Summarize)
}
