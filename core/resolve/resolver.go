// ABOUTME: Remote item resolver turning GUID pairs into artwork, value and identity
// ABOUTME: Resolution never errors; every fallback exhausted yields an empty result

package resolve

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"podcheck-api/core/domain"
	"podcheck-api/core/interfaces"
	"podcheck-api/core/xmlaccess"
)

const (
	resultTTL       = 30 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Resolver resolves podcast:remoteItem references against the podcast
// directory and the remote feed itself. Results are cached in-process
// keyed by GUID pair, since value time splits routinely repeat the same
// reference across episodes.
type Resolver struct {
	deps      interfaces.Dependencies
	directory interfaces.Directory
	results   *gocache.Cache
}

// NewResolver creates a resolver. directory may be nil, in which case
// only the remote feed fetch path is available.
func NewResolver(deps interfaces.Dependencies, directory interfaces.Directory) *Resolver {
	return &Resolver{
		deps:      deps,
		directory: directory,
		results:   gocache.New(resultTTL, cleanupInterval),
	}
}

// Resolve turns a remote item reference into its resolved form. Every
// lookup step is best-effort: a directory miss, an unreachable feed or
// a GUID with no matching item all degrade to emptier results, never to
// an error.
func (r *Resolver) Resolve(ctx context.Context, item domain.RemoteItem) *domain.ResolvedRemoteItem {
	key := item.FeedGuid + ":" + item.ItemGuid
	if cached, found := r.results.Get(key); found {
		return cached.(*domain.ResolvedRemoteItem)
	}

	resolved := &domain.ResolvedRemoteItem{
		FeedGuid: item.FeedGuid,
		ItemGuid: item.ItemGuid,
	}

	directoryArt := r.directoryEpisodeArtwork(ctx, item)

	feedRecord := r.directoryFeed(ctx, item.FeedGuid)
	if feedRecord != nil && feedRecord.URL != "" {
		r.resolveFromFeed(ctx, feedRecord.URL, item.ItemGuid, resolved)
	}

	if resolved.ArtworkURL == "" {
		resolved.ArtworkURL = directoryArt
	}
	if resolved.ArtworkURL == "" && feedRecord != nil {
		if feedRecord.Artwork != "" {
			resolved.ArtworkURL = feedRecord.Artwork
		} else {
			resolved.ArtworkURL = feedRecord.Image
		}
	}

	r.results.Set(key, resolved, gocache.DefaultExpiration)
	return resolved
}

// ResolveAll resolves every distinct remote item referenced from the
// feed's value time splits, in first-reference order.
func (r *Resolver) ResolveAll(ctx context.Context, feed *domain.Feed) []domain.ResolvedRemoteItem {
	items := CollectRemoteItems(feed)
	resolved := make([]domain.ResolvedRemoteItem, 0, len(items))
	for _, item := range items {
		resolved = append(resolved, *r.Resolve(ctx, item))
	}
	return resolved
}

// CollectRemoteItems walks the channel, episode and live item value
// blocks and returns each referenced remote item once, keyed by GUID
// pair, preserving first-reference order.
func CollectRemoteItems(feed *domain.Feed) []domain.RemoteItem {
	seen := make(map[string]bool)
	var items []domain.RemoteItem

	collect := func(value *domain.ValueBlock) {
		if value == nil {
			return
		}
		for _, split := range value.TimeSplits {
			if split.RemoteItem == nil || split.RemoteItem.FeedGuid == "" {
				continue
			}
			key := split.RemoteItem.FeedGuid + ":" + split.RemoteItem.ItemGuid
			if seen[key] {
				continue
			}
			seen[key] = true
			items = append(items, *split.RemoteItem)
		}
	}

	collect(feed.Channel.Value)
	for _, episode := range feed.Episodes {
		collect(episode.Value)
	}
	for _, liveItem := range feed.LiveItems {
		collect(liveItem.Value)
	}
	return items
}

func (r *Resolver) directoryEpisodeArtwork(ctx context.Context, item domain.RemoteItem) string {
	if r.directory == nil || item.ItemGuid == "" {
		return ""
	}
	episode, err := r.directory.EpisodeByGUID(ctx, item.ItemGuid, item.FeedGuid)
	if err != nil {
		r.deps.Logger.Warn("Directory episode lookup failed", map[string]interface{}{
			"feedGuid": item.FeedGuid,
			"itemGuid": item.ItemGuid,
			"error":    err.Error(),
		})
		return ""
	}
	if episode == nil {
		return ""
	}
	if episode.Image != "" {
		return episode.Image
	}
	return episode.FeedImage
}

func (r *Resolver) directoryFeed(ctx context.Context, feedGuid string) *interfaces.DirectoryFeed {
	if r.directory == nil || feedGuid == "" {
		return nil
	}
	record, err := r.directory.PodcastByGUID(ctx, feedGuid)
	if err != nil {
		r.deps.Logger.Warn("Directory feed lookup failed", map[string]interface{}{
			"feedGuid": feedGuid,
			"error":    err.Error(),
		})
		return nil
	}
	return record
}

// resolveFromFeed fetches the remote feed and fills in whatever the
// document provides: the referenced item's artwork and value block, the
// channel's declared GUID, and channel or any-episode artwork as
// fallbacks.
func (r *Resolver) resolveFromFeed(ctx context.Context, feedURL, itemGuid string, resolved *domain.ResolvedRemoteItem) {
	body, err := r.deps.Fetcher.Fetch(ctx, feedURL)
	if err != nil {
		r.deps.Logger.Warn("Remote feed fetch failed", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return
	}

	doc, err := xmlaccess.ParseDocument(body)
	if err != nil {
		r.deps.Logger.Warn("Remote feed unparsable", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return
	}

	channel := xmlaccess.NodesOf(doc, "//channel")
	if len(channel) > 0 {
		resolved.RemoteFeedGuid = xmlaccess.TextOf(channel[0], "podcast:guid")
	}

	if item := findItemByGUID(doc, itemGuid); item != nil {
		resolved.ArtworkURL = normalizeURL(itemArtwork(item), feedURL)
		resolved.Value = extractItemValue(item)
	}

	if resolved.ArtworkURL == "" && len(channel) > 0 {
		resolved.ArtworkURL = normalizeURL(channelArtwork(channel[0]), feedURL)
	}
	if resolved.ArtworkURL == "" {
		resolved.ArtworkURL = normalizeURL(anyItemArtwork(doc), feedURL)
	}
}
