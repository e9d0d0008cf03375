// ABOUTME: Chapter list checks for ordering, timing and titles
// ABOUTME: Operates on parsed chapter documents fetched from podcast:chapters URLs

package validate

import (
	"fmt"

	"podcheck-api/core/domain"
)

// ValidateChapters checks a parsed chapter list for timing and metadata
// problems. Start times must be non-negative and strictly increasing.
func ValidateChapters(chapters []domain.Chapter) []domain.Finding {
	var findings []domain.Finding

	for i, chapter := range chapters {
		if chapter.StartTime < 0 {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Chapter %d: Negative Start Time", i+1),
				"Chapter start time cannot be negative"))
		}
		if i > 0 && chapter.StartTime <= chapters[i-1].StartTime {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Chapter %d: Out of Order", i+1),
				"Chapter start times must be strictly increasing"))
		}
		if chapter.Title == "" {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("Chapter %d: Missing Title", i+1),
				"Chapter titles improve navigation"))
		}
	}

	return findings
}
