// ABOUTME: Standalone CORS relay server for fetching feeds from browsers
// ABOUTME: Proxies GET requests to a target URL with permissive CORS headers

package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"podcheck-api/api/handlers"
	stdhttp "podcheck-api/infrastructure/http/standard"
	logruslogger "podcheck-api/infrastructure/logger/logrus"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	logger := logruslogger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT") == "json")
	client := stdhttp.NewStandardHTTPClient(10 * time.Second)
	relay := handlers.NewRelayHandler(client, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", relay.ServeHTTP)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		// Preflight answers a plain 200, not the library's default 204
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(mux)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Relay server starting", map[string]interface{}{
		"address": srv.Addr,
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Relay server failed: %v", err)
	}
}
