// ABOUTME: Live item checks covering scheduling fields and time-range consistency
// ABOUTME: End must be strictly later than start when both timestamps parse

package validate

import (
	"fmt"

	"podcheck-api/core/domain"
	"podcheck-api/pkg/utils/timeutil"
)

func checkLiveItems(liveItems []domain.LiveItem) []domain.Finding {
	var findings []domain.Finding

	for i, liveItem := range liveItems {
		if liveItem.Title == "" {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Live Item %d: Missing Title", i+1),
				"Live item title is required for Podcast Index"))
		}
		if liveItem.Start == "" {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("Live Item %d: Missing Start Time", i+1),
				"Live item start time is required for scheduling"))
		}

		if liveItem.Start != "" && liveItem.End != "" {
			start := timeutil.ParseFlexible(liveItem.Start)
			end := timeutil.ParseFlexible(liveItem.End)
			if !start.IsZero() && !end.IsZero() && !end.After(start) {
				findings = append(findings, finding(domain.SeverityError,
					fmt.Sprintf("Live Item %d: Invalid Time Range", i+1),
					"End time must be after start time"))
			}
		}

		if liveItem.Enclosure.URL == "" {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("Live Item %d: No Stream URL", i+1),
				"Consider adding a streaming URL for live listeners"))
		}
		if liveItem.Chat == "" {
			findings = append(findings, finding(domain.SeverityInfo,
				fmt.Sprintf("Live Item %d: No Chat Room", i+1),
				"Consider adding a chat room URL for live interaction"))
		}
	}

	return findings
}
