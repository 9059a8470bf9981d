// ABOUTME: Main entry point for the NoteGrab API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notegrab-api/api"
	"notegrab-api/api/handlers"
	"notegrab-api/core/export"
	"notegrab-api/core/extract"
	"notegrab-api/core/feedcache"
	"notegrab-api/core/interfaces"
	"notegrab-api/infrastructure/cache/memory"
	"notegrab-api/infrastructure/cache/redis"
	"notegrab-api/infrastructure/cache/sqlite"
	stdhttp "notegrab-api/infrastructure/http/standard"
	logruslogger "notegrab-api/infrastructure/logger/logrus"
	stdlogger "notegrab-api/infrastructure/logger/standard"
	collypage "notegrab-api/infrastructure/page/colly"
	"notegrab-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	if cfg.Log.Format == "text" {
		logger = stdlogger.New(cfg.Log.Level)
	} else {
		logger = logruslogger.New(cfg.Log.Level)
	}
	logger.Info("Starting NoteGrab API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create the durable cache tier
	var store interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			store = memory.NewMemoryCache()
		} else {
			store = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			store = memory.NewMemoryCache()
		} else {
			store = sqliteCache
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
		}
	default:
		store = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	pageHeaders := cfg.Upstream.PageHeaders()
	feedCache := feedcache.New(store, logger)
	pageFetcher := collypage.NewFetcher(pageHeaders, logger)

	extractionService := extract.NewService(deps, feedCache, pageFetcher, extract.Config{
		FeedAPIURL:      cfg.Upstream.FeedAPIURL,
		CommentAPIURL:   cfg.Upstream.CommentAPIURL,
		CDNHostMarker:   cfg.Upstream.CDNHostMarker,
		PageHeaders:     pageHeaders,
		DOMWaitTimeout:  cfg.Extraction.DOMWaitTimeout,
		DOMPollInterval: cfg.Extraction.DOMPollInterval,
		DOMSettleDelay:  cfg.Extraction.DOMSettleDelay,
	})

	exportService := export.NewService(deps, export.Config{
		RequestHeaders:     pageHeaders,
		DownloadsPerSecond: cfg.Export.DownloadsPerSecond,
	})

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewExtractHandler(extractionService).RegisterRoutes(humaAPI)
	handlers.NewFeedCacheHandler(feedCache).RegisterRoutes(humaAPI)
	handlers.NewExportHandler(extractionService, exportService).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // packaging downloads media inline
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
