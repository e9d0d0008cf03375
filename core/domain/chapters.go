// ABOUTME: Chapter models for externally hosted chapters documents
// ABOUTME: End times are derived, not stored in the source document

package domain

// Chapter is a single named time marker within an episode's audio.
type Chapter struct {
	StartTime float64 `json:"startTime"`
	Title     string  `json:"title"`
	URL       string  `json:"url,omitempty"`
	Image     string  `json:"image,omitempty"`

	// EndTime is derived: the next chapter's start time, or StartTime
	// plus 300 seconds for the last chapter
	EndTime float64 `json:"endTime"`
}

// ChapterList is a parsed chapters document. Fetched per episode with
// an independent lifecycle; never cached across episodes.
type ChapterList struct {
	Chapters []Chapter `json:"chapters"`
}
