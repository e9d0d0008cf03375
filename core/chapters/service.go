// ABOUTME: Chapters service fetching and parsing podcast:chapters JSON documents
// ABOUTME: Derives end times from the following chapter's start time

package chapters

import (
	"context"
	"encoding/json"
	"fmt"

	"podcheck-api/core/domain"
	"podcheck-api/core/errors"
	"podcheck-api/core/interfaces"
)

// lastChapterDuration is assumed for the final chapter, which has no
// successor to derive an end time from
const lastChapterDuration = 300

// Service fetches and parses chapter documents. Chapter documents are
// small and episode-specific, so they are fetched fresh on every call.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new chapters service with the given dependencies.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Fetch retrieves and parses the chapters document at the given URL.
func (s *Service) Fetch(ctx context.Context, url string) (*domain.ChapterList, error) {
	if url == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "chapters URL is required"}
	}

	body, err := s.deps.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	list, err := Parse(body)
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Debug("Chapters fetched", map[string]interface{}{
		"url":      url,
		"chapters": len(list.Chapters),
	})
	return list, nil
}

// Parse decodes a chapters JSON document and derives end times. Each
// chapter ends where the next begins; the last chapter is assumed to
// run five minutes.
func Parse(body []byte) (*domain.ChapterList, error) {
	var list domain.ChapterList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Message: err.Error()}
	}

	for i := range list.Chapters {
		if i < len(list.Chapters)-1 {
			list.Chapters[i].EndTime = list.Chapters[i+1].StartTime
		} else {
			list.Chapters[i].EndTime = list.Chapters[i].StartTime + lastChapterDuration
		}
	}

	return &list, nil
}

// FormatTimestamp renders a chapter start time as H:MM:SS or M:SS.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
