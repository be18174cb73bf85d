package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-analyzer/backend/config"
	"github.com/pageza/recipe-analyzer/backend/internal/api"
	"github.com/pageza/recipe-analyzer/backend/internal/cache"
	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/mealdb"
	"github.com/pageza/recipe-analyzer/backend/internal/observability"
	"github.com/pageza/recipe-analyzer/backend/internal/router"
	"github.com/pageza/recipe-analyzer/backend/internal/server"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

const serviceName = "recipe-analyzer"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recipe-analyzer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Channel to listen for an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OtelEnabled,
		ServiceName: serviceName,
		Environment: string(cfg.Environment),
		Version:     version,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		SampleRatio: cfg.OtelSampleRatio,
	})
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	var fetcher mealdb.Fetcher = mealdb.NewHTTPFetcher(cfg.UpstreamTimeout())
	if cfg.CacheEnabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return err
		}
		redisCache := cache.NewRedisCache(redisClient)
		defer redisCache.Close()
		fetcher = mealdb.NewCachingFetcher(fetcher, redisCache, log)
	} else {
		log.Info("Response cache disabled")
	}

	meals := mealdb.New(fetcher, cfg.MealDBBaseURL)
	analysisService := service.NewAnalysisService(meals)
	browseService := service.NewBrowseService(meals, log)

	engine := router.SetupRouter(router.Options{
		ServiceName: serviceName,
		CORSOrigins: cfg.CORSAllowedOrigins,
		Logger:      log,
	}, api.NewHandlers(analysisService, browseService, log))

	log.Info("Starting server",
		"addr", cfg.Addr(),
		"environment", cfg.Environment,
		"upstream", meals.BaseURL(),
		"cache", cfg.CacheEnabled,
	)
	if err := server.New(cfg.Addr(), engine, log).Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
