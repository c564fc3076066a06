package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/ca-io-systems/YT-Trends/internal/config"
	"github.com/ca-io-systems/YT-Trends/internal/handler"
	"github.com/ca-io-systems/YT-Trends/internal/metrics"
	"github.com/ca-io-systems/YT-Trends/internal/middleware"
	"github.com/ca-io-systems/YT-Trends/internal/router"
	"github.com/ca-io-systems/YT-Trends/internal/service"
	"github.com/ca-io-systems/YT-Trends/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "yt-trends")
	log := middleware.Logger
	metrics.Register()

	ctx := context.Background()

	api, credErr := newVideoAPI(ctx, cfg)

	cache := service.NewCacheService(cfg.Cache.RedisURL, cfg.Cache.CategoryTTL, log)
	defer cache.Close()

	var completer service.Completer
	if cfg.SummaryEnabled() {
		completer = service.NewLLMCompleter(cfg.LLM)
		log.Info().Str("model", cfg.LLM.Model).Msg("summary collaborator configured")
	}

	source := service.NewSourceResolver(api)
	categorySvc := service.NewCategoryService(api, cache, log)
	trendingSvc := service.NewTrendingService(source)
	statsSvc := service.NewStatsService(source, categorySvc)
	summarySvc := service.NewSummaryService(completer, log)

	app := fiber.New(fiber.Config{
		AppName:      "YT Trends API",
		ServerHeader: "YT-Trends",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	router.Setup(app, &router.Handlers{
		Trending:   handler.NewTrendingHandler(trendingSvc),
		Categories: handler.NewCategoryHandler(categorySvc),
		Stats:      handler.NewStatsHandler(statsSvc),
		Summary:    handler.NewSummaryHandler(summarySvc),
		Health:     handler.NewHealthHandler(credErr, cache.Client()),
	}, cfg.CORSOrigins)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("YT Trends starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newVideoAPI builds the upstream client. When the credential is unusable
// every service gets an API that fails fast with the credential error, so the
// server still starts and reports the problem per request.
func newVideoAPI(ctx context.Context, cfg *config.Config) (service.VideoAPI, error) {
	log := middleware.Logger

	if err := cfg.ValidateCredential(); err != nil {
		log.Warn().Err(err).Msg("YouTube API key missing, queries will fail")
		return service.Unconfigured(err), err
	}

	client, err := youtube.NewClient(ctx, youtube.Options{
		APIKey:   cfg.YouTube.APIKey,
		Endpoint: cfg.YouTube.Endpoint,
		Timeout:  cfg.YouTube.Timeout,
		RPS:      cfg.YouTube.RPS,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create YouTube client")
		return service.Unconfigured(err), err
	}
	return client, nil
}
