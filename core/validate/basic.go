// ABOUTME: Basic RSS compliance checks for required channel and episode elements
// ABOUTME: Includes the duplicate-GUID and suspicious-enclosure-size rules

package validate

import (
	"fmt"
	"strconv"

	"podcheck-api/core/domain"
)

func checkBasicRSS(feed *domain.Feed) []domain.Finding {
	var findings []domain.Finding
	channel := feed.Channel

	if channel.Title == "" {
		findings = append(findings, finding(domain.SeverityError,
			"Missing Channel Title", "Channel title is required for RSS compliance"))
	}
	if channel.Description == "" {
		findings = append(findings, finding(domain.SeverityWarning,
			"Missing Channel Description", "Channel description is recommended for podcast discovery"))
	}
	if channel.Language == "" {
		findings = append(findings, finding(domain.SeverityWarning,
			"Missing Language", "Language specification helps with international distribution"))
	}
	if channel.Link == "" {
		findings = append(findings, finding(domain.SeverityError,
			"Missing Channel Link", "Channel link is required for RSS compliance"))
	}

	for i, episode := range feed.Episodes {
		if episode.Title == "" {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Episode %d: Missing Title", i+1),
				"Episode title is required for RSS compliance"))
		}
		if episode.GUID == "" {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Episode %d: Missing GUID", i+1),
				"Episode GUID is required for Podcast Index aggregation"))
		}
		if episode.Enclosure.URL == "" {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Episode %d: Missing Audio File", i+1),
				"Episode audio file URL is required for playback"))
		}
		if episode.PubDate == "" {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("Episode %d: Missing Publication Date", i+1),
				"Publication date helps with chronological ordering"))
		}

		// GUID uniqueness is an invariant to check, never to assume.
		// Each duplicate names the first other episode sharing its GUID.
		if other := firstDuplicate(feed.Episodes, i); episode.GUID != "" && other != -1 {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Episode %d: Duplicate GUID", i+1),
				fmt.Sprintf("GUID matches episode %d - this breaks Podcast Index aggregation", other+1)))
		}
	}

	for i, episode := range feed.Episodes {
		if episode.Enclosure.Length == "" {
			continue
		}
		if length, err := strconv.Atoi(episode.Enclosure.Length); err == nil && length < 1000 {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("Episode %d: Small File Size", i+1),
				fmt.Sprintf("File size (%d bytes) seems unusually small for audio content", length)))
		}
	}

	return findings
}

func firstDuplicate(episodes []domain.Episode, index int) int {
	for i, other := range episodes {
		if i != index && other.GUID == episodes[index].GUID {
			return i
		}
	}
	return -1
}
