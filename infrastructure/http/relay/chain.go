// ABOUTME: Ordered transport chain for fetching feeds through direct and relayed routes
// ABOUTME: First successful transport wins; a failed transport is skipped, never retried

package relay

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"podcheck-api/core/errors"
	"podcheck-api/core/interfaces"
)

// attemptTimeout bounds each transport attempt independently of the
// caller's deadline
const attemptTimeout = 10 * time.Second

// Transport is one way of reaching a document: a direct request or a
// relay that wraps the target URL.
type Transport struct {
	Name     string
	BuildURL func(target string) string
}

// DirectTransport requests the target URL as-is.
func DirectTransport() Transport {
	return Transport{
		Name:     "direct",
		BuildURL: func(target string) string { return target },
	}
}

// RelayTransport routes the request through a relay endpoint. The
// template contains a %s placeholder for the escaped target URL.
func RelayTransport(name, template string) Transport {
	return Transport{
		Name: name,
		BuildURL: func(target string) string {
			return fmt.Sprintf(template, url.QueryEscape(target))
		},
	}
}

// Chain implements FeedFetcher over an ordered list of transports.
// Transports are tried in order and the first success wins; the order
// encodes reachability preference, not load balancing.
type Chain struct {
	transports []Transport
	client     interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewChain creates a transport chain. The client should be configured
// with a single attempt per request; the chain provides the fallback.
func NewChain(transports []Transport, client interfaces.HTTPClient, logger interfaces.Logger) *Chain {
	return &Chain{
		transports: transports,
		client:     client,
		logger:     logger,
	}
}

// Fetch tries each transport in order until one returns a 2xx response,
// giving each attempt its own timeout. A transport that fails or times
// out is skipped for the remainder of this fetch, never retried. When
// every transport has failed the chain returns a TransportError wrapping
// the last failure.
func (c *Chain) Fetch(ctx context.Context, target string) ([]byte, error) {
	var lastErr error

	for _, transport := range c.transports {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		start := time.Now()
		body, err := c.attempt(ctx, transport, target)
		elapsed := time.Since(start)

		if err != nil {
			lastErr = err
			c.logger.Warn("Transport attempt failed", map[string]interface{}{
				"transport": transport.Name,
				"target":    target,
				"elapsed":   elapsed.String(),
				"error":     err.Error(),
			})
			continue
		}

		c.logger.Debug("Transport attempt succeeded", map[string]interface{}{
			"transport": transport.Name,
			"target":    target,
			"elapsed":   elapsed.String(),
			"bytes":     len(body),
		})
		return body, nil
	}

	return nil, &errors.TransportError{
		URL:      target,
		Attempts: len(c.transports),
		Last:     lastErr,
	}
}

func (c *Chain) attempt(ctx context.Context, transport Transport, target string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	resp, err := c.client.Get(attemptCtx, transport.BuildURL(target))
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("transport %s returned %d", transport.Name, resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}
	return body, nil
}
