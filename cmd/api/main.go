// ABOUTME: Main entry point for the Podcheck API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"podcheck-api/api"
	"podcheck-api/api/handlers"
	"podcheck-api/core/chapters"
	"podcheck-api/core/feed"
	"podcheck-api/core/interfaces"
	"podcheck-api/core/resolve"
	"podcheck-api/infrastructure/cache/memory"
	"podcheck-api/infrastructure/cache/redis"
	"podcheck-api/infrastructure/http/relay"
	stdhttp "podcheck-api/infrastructure/http/standard"
	logruslogger "podcheck-api/infrastructure/logger/logrus"
	"podcheck-api/infrastructure/podcastindex"
	"podcheck-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT") == "json")
	logger.Info("Starting Podcheck API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"relays":     len(cfg.Fetch.RelayURLs),
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// HTTP clients: a retrying client for single-target requests and a
	// single-attempt client for the transport chain, which retries by
	// advancing to the next transport instead
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)
	chainClient := stdhttp.NewStandardHTTPClientWithRetries(
		time.Duration(cfg.Fetch.Timeout)*time.Second, 1)

	transports := []relay.Transport{relay.DirectTransport()}
	for i, template := range cfg.Fetch.RelayURLs {
		transports = append(transports, relay.RelayTransport(fmt.Sprintf("relay-%d", i+1), template))
	}
	fetcher := relay.NewChain(transports, chainClient, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Fetcher:    fetcher,
		Logger:     logger,
	}

	// Create services
	feedService := feed.NewServiceWithTTL(deps, time.Duration(cfg.Cache.FeedTTL)*time.Second)
	chaptersService := chapters.NewService(deps)

	directory := podcastindex.NewClient(
		cfg.PodcastIndex.APIKey, cfg.PodcastIndex.APISecret, httpClient, logger)
	if !directory.Configured() {
		logger.Warn("Podcast Index credentials not set, directory lookups disabled", nil)
	}
	resolver := resolve.NewResolver(deps, directory)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  10,
		RateBurst:  20,
		RateWindow: 3 * time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	checkHandler := handlers.NewCheckHandler(feedService, resolver)
	checkHandler.RegisterRoutes(humaAPI)

	resolveHandler := handlers.NewResolveHandler(resolver)
	resolveHandler.RegisterRoutes(humaAPI)

	chaptersHandler := handlers.NewChaptersHandler(chaptersService)
	chaptersHandler.RegisterRoutes(humaAPI)

	relayHandler := handlers.NewRelayHandler(httpClient, logger)
	relayHandler.Mount(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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
