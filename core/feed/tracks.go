// ABOUTME: Track list extraction from episode description HTML
// ABOUTME: Best-effort parse of anchor tags; failures yield zero tracks, never an error

package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podcheck-api/core/domain"
)

// ExtractTracks scans an episode description for anchors shaped like
// <a href='URL'>Artist - Title</a>, a convention of some music-feed
// publishers rather than a namespace standard. Anything that doesn't
// match is skipped; a description with no anchors yields zero tracks.
func ExtractTracks(description string) []domain.Track {
	if description == "" || !strings.Contains(description, "<a") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return nil
	}

	var tracks []domain.Track
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if href == "" || text == "" {
			return
		}

		artist, title := splitTrackLabel(text)
		tracks = append(tracks, domain.Track{
			URL:    href,
			Artist: artist,
			Title:  title,
		})
	})

	return tracks
}

// splitTrackLabel separates "Artist - Title" anchor text, falling back
// to the whole label as the title when no separator is present.
func splitTrackLabel(text string) (artist, title string) {
	parts := strings.SplitN(text, " - ", 2)
	if len(parts) == 2 && parts[0] != "" {
		return parts[0], parts[1]
	}
	return "Unknown", text
}
