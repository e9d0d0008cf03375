package interfaces

import "context"

// DirectoryFeed is the directory API's record for a podcast feed.
type DirectoryFeed struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Link   string `json:"link"`
	Author string `json:"author"`
	Image  string `json:"image"`

	// Artwork is the directory's preferred image, when distinct from Image
	Artwork string `json:"artwork"`
	GUID    string `json:"podcastGuid"`
}

// DirectoryEpisode is the directory API's record for a single episode.
type DirectoryEpisode struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	FeedImage string `json:"feedImage"`
	FeedTitle string `json:"feedTitle"`
}

// Directory is the third-party podcast directory lookup API, treated as
// a black box mapping GUIDs to feed URLs and episode metadata. A lookup
// with no match returns (nil, nil): a miss is a valid negative result,
// not an error.
type Directory interface {
	// PodcastByGUID resolves a feed GUID to the feed's directory record.
	PodcastByGUID(ctx context.Context, feedGuid string) (*DirectoryFeed, error)

	// EpisodeByGUID resolves an item GUID (optionally scoped to a feed
	// GUID) to the episode's directory record.
	EpisodeByGUID(ctx context.Context, itemGuid, feedGuid string) (*DirectoryEpisode, error)
}
