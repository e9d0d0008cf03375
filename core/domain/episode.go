// ABOUTME: Episode and live item domain models for podcast feed entries
// ABOUTME: Covers enclosures, person tags, track lists and chapter references

package domain

// Episode represents a single feed item.
type Episode struct {
	Title       string
	Description string

	// GUID is the episode's unique key. Uniqueness within a feed is an
	// invariant the validator checks, not one extraction assumes.
	GUID string

	PubDate string

	// Duration is kept in its raw string form ("1:02:03", "5:30" or
	// plain seconds) for exact redisplay; use pkg/utils/duration to
	// derive seconds.
	Duration string

	Explicit string
	Image    string

	Enclosure Enclosure

	// ChaptersURL references an external chapters document, empty when
	// the episode declares none
	ChaptersURL string

	Persons []Person

	// Value is the episode-level payment block, nil when absent
	Value *ValueBlock

	// Tracks are parsed best-effort from anchor tags in the description
	Tracks []Track
}

// Enclosure describes the episode's media attachment.
type Enclosure struct {
	URL    string
	Type   string
	Length string
}

// Person represents a podcast:person tag. All fields default to the
// empty string.
type Person struct {
	Name  string
	Href  string
	Img   string
	Group string
	Role  string
}

// Track is a song reference parsed from an episode description anchor
// of the form <a href='URL'>Artist - Title</a>.
type Track struct {
	URL    string
	Artist string
	Title  string
}

// LiveItem represents a podcast:liveItem entry. Lifecycle is identical
// to Episode: constructed fresh on every parse.
type LiveItem struct {
	Title     string
	Status    string
	Start     string
	End       string
	Chat      string
	Link      string
	Enclosure Enclosure
	Value     *ValueBlock
}
