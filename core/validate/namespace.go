// ABOUTME: Podcast namespace presence checks for channel and episode elements
// ABOUTME: Missing optional namespace features are informational, never errors

package validate

import (
	"fmt"

	"podcheck-api/core/domain"
)

func checkPodcastNamespace(feed *domain.Feed) []domain.Finding {
	var findings []domain.Finding
	channel := feed.Channel

	if channel.GUID == "" {
		findings = append(findings, finding(domain.SeverityWarning,
			"Missing Podcast GUID", "podcast:guid is recommended for Podcast Index identification"))
	}
	if channel.Medium == "" {
		findings = append(findings, finding(domain.SeverityWarning,
			"Missing Podcast Medium", "podcast:medium helps categorize your content type"))
	}
	if channel.Complete == "yes" && len(feed.Episodes) > 0 {
		findings = append(findings, finding(domain.SeverityWarning,
			"Podcast Marked Complete",
			`podcast:complete is set to "yes" but episodes exist - this may indicate the podcast is finished`))
	}

	for i, episode := range feed.Episodes {
		if episode.ChaptersURL == "" {
			findings = append(findings, finding(domain.SeverityInfo,
				fmt.Sprintf("Episode %d: No Chapters", i+1),
				"Consider adding podcast:chapters for better user experience"))
		}
		if len(episode.Persons) == 0 {
			findings = append(findings, finding(domain.SeverityInfo,
				fmt.Sprintf("Episode %d: No Person Tags", i+1),
				"Consider adding podcast:person tags for host/guest identification"))
		}
		if episode.Value == nil {
			findings = append(findings, finding(domain.SeverityInfo,
				fmt.Sprintf("Episode %d: No Value4Value", i+1),
				"Consider adding podcast:value for Lightning Network payments"))
		}
	}

	return findings
}
