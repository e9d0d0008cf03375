// ABOUTME: Feed domain model represents a podcast RSS feed with namespace extensions
// ABOUTME: Holds the canonical channel, episode and live item data produced by extraction

package domain

// Feed is the canonical in-memory representation of a podcast feed.
// It is built once per fetch-and-parse cycle and never mutated afterwards;
// a re-fetch replaces the whole value.
type Feed struct {
	// Channel holds the feed-level metadata
	Channel Channel

	// Episodes contains the regular items in document order
	Episodes []Episode

	// LiveItems contains the podcast:liveItem entries
	LiveItems []LiveItem
}

// Channel holds feed-level metadata. All scalar fields default to the
// empty string when the source element is absent, never to a null-ish
// sentinel, so downstream checks can compare against "" uniformly.
type Channel struct {
	Title         string
	Description   string
	Language      string
	Link          string
	LastBuildDate string
	PubDate       string

	// Image is the channel image URL (image > url)
	Image string

	// iTunes namespace fields
	Explicit string
	Category string
	Keywords string
	Author   string
	Email    string

	// Podcast namespace fields
	Complete string
	Block    string
	Medium   string
	GUID     string

	// Value is the channel-level payment block, nil when the feed
	// declares none (the normal case)
	Value *ValueBlock
}

// Stats summarizes a feed for display.
type Stats struct {
	EpisodeCount  int    `json:"episodeCount"`
	LiveItemCount int    `json:"liveItemCount"`
	LastBuildDate string `json:"lastBuildDate"`

	// TotalDurationSeconds is the sum of all episode durations
	TotalDurationSeconds int `json:"totalDurationSeconds"`
}
