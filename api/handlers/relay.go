// ABOUTME: Relay handler proxying feed documents for clients blocked by CORS
// ABOUTME: Plain chi route outside Huma since it streams arbitrary upstream bodies

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"podcheck-api/core/interfaces"
)

// relayTimeout bounds the upstream fetch, matching the per-attempt
// ceiling of the transport chain; a slow origin answers 504
const relayTimeout = 10 * time.Second

// RelayHandler proxies GET requests to a target URL, forwarding the
// upstream body and content type.
type RelayHandler struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(client interfaces.HTTPClient, logger interfaces.Logger) *RelayHandler {
	return &RelayHandler{
		client: client,
		logger: logger,
	}
}

// Mount registers the relay route on a chi router. Non-GET methods get
// 405 from the router's method matching.
func (h *RelayHandler) Mount(router chi.Router) {
	router.Get("/relay", h.ServeHTTP)
}

// ServeHTTP handles the GET /relay endpoint
func (h *RelayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	target := r.URL.Query().Get("url")
	if target == "" {
		http.Error(w, "url query parameter is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), relayTimeout)
	defer cancel()

	resp, err := h.client.Get(ctx, target)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		h.logger.Warn("Relay fetch failed", map[string]interface{}{
			"target": target,
			"error":  err.Error(),
		})
		http.Error(w, "upstream fetch failed", status)
		return
	}
	defer resp.Body().Close()

	contentType := resp.Header("Content-Type")
	if contentType == "" {
		contentType = "application/xml"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode())

	if _, err := io.Copy(w, resp.Body()); err != nil {
		h.logger.Warn("Relay body copy interrupted", map[string]interface{}{
			"target": target,
			"error":  err.Error(),
		})
	}
}
