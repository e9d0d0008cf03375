// ABOUTME: Feed service fetches podcast feeds through the transport chain and extracts the model
// ABOUTME: Provides business logic for feed checking independent of the HTTP layer

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"podcheck-api/core/domain"
	coreerrors "podcheck-api/core/errors"
	"podcheck-api/core/interfaces"
	"podcheck-api/core/xmlaccess"
	"podcheck-api/pkg/utils/duration"
)

const defaultCacheTTL = 1 * time.Hour

// Service handles feed fetching and model extraction
type Service struct {
	deps interfaces.Dependencies
	ttl  time.Duration
}

// NewService creates a new feed service instance with the default cache TTL
func NewService(deps interfaces.Dependencies) *Service {
	return NewServiceWithTTL(deps, defaultCacheTTL)
}

// NewServiceWithTTL creates a feed service caching checked feeds for the
// given duration. Non-positive values fall back to the default.
func NewServiceWithTTL(deps interfaces.Dependencies, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{deps: deps, ttl: ttl}
}

// Fetch retrieves and extracts the feed at the given URL. The model is
// rebuilt wholesale on every fetch; a concurrent second fetch simply
// supersedes the first (last-write-wins on the caller's reference).
func (s *Service) Fetch(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if feedURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "feed URL cannot be empty"}
	}

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	if cached, err := s.getCachedFeed(ctx, feedURL); err == nil && cached != nil {
		return cached, nil
	}

	if s.deps.Fetcher == nil {
		return nil, errors.New("feed fetcher not configured")
	}

	body, err := s.deps.Fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := s.Parse(body)
	if err != nil {
		return nil, err
	}

	// Cache errors are not the caller's problem
	_ = s.cacheFeed(ctx, feedURL, feed)

	return feed, nil
}

// Parse extracts the canonical model from raw feed bytes.
func (s *Service) Parse(body []byte) (*domain.Feed, error) {
	if len(body) == 0 {
		return nil, errors.New("empty feed content")
	}

	doc, err := xmlaccess.ParseDocument(body)
	if err != nil {
		return nil, err
	}

	return Extract(doc), nil
}

// Stats derives display statistics from a feed model.
func Stats(feed *domain.Feed) domain.Stats {
	total := 0
	for _, episode := range feed.Episodes {
		total += duration.ParseSeconds(episode.Duration)
	}
	return domain.Stats{
		EpisodeCount:         len(feed.Episodes),
		LiveItemCount:        len(feed.LiveItems),
		LastBuildDate:        feed.Channel.LastBuildDate,
		TotalDurationSeconds: total,
	}
}

func (s *Service) getCachedFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if s.deps.Cache == nil {
		return nil, nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(feedURL))
	if err != nil || data == nil {
		return nil, err
	}

	var feed domain.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

func (s *Service) cacheFeed(ctx context.Context, feedURL string, feed *domain.Feed) error {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := json.Marshal(feed)
	if err != nil {
		return err
	}

	return s.deps.Cache.Set(ctx, cacheKey(feedURL), data, s.ttl)
}

func cacheKey(feedURL string) string {
	return fmt.Sprintf("feed:%s", feedURL)
}
