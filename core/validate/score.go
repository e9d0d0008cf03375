// ABOUTME: Podcast Index readiness score and feature presence report
// ABOUTME: Awards points per adopted namespace feature, capped at 100

package validate

import (
	"podcheck-api/core/domain"
)

// Feature presence statuses used in the readiness report
const (
	StatusPresent = "present"
	StatusMissing = "missing"
	StatusWarning = "warning"
)

// FeatureStatus describes one namespace feature in the readiness report.
type FeatureStatus struct {
	Feature string `json:"feature"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

// Report summarizes Podcast Index readiness for a feed.
type Report struct {
	Score    int             `json:"score"`
	Status   string          `json:"status"`
	Features []FeatureStatus `json:"features"`
}

// Score computes the Podcast Index readiness score for a feed.
// Each adopted namespace feature earns points; full episode coverage
// of chapters or value blocks earns a bonus. The result is capped at 100.
func Score(feed *domain.Feed) int {
	score := 0
	channel := feed.Channel

	if channel.GUID != "" {
		score += 10
	}
	if channel.Medium != "" {
		score += 5
	}
	if channel.Complete != "" {
		score += 5
	}

	total := len(feed.Episodes)
	withValue := 0
	withChapters := 0
	withPersons := 0
	for _, episode := range feed.Episodes {
		if episode.Value != nil {
			withValue++
		}
		if episode.ChaptersURL != "" {
			withChapters++
		}
		if len(episode.Persons) > 0 {
			withPersons++
		}
	}

	if total > 0 {
		score += 10
	}
	if withValue > 0 {
		score += 10
		if withValue == total {
			score += 5
		}
	}
	if withChapters > 0 {
		score += 10
		if withChapters == total {
			score += 5
		}
	}
	if withPersons > 0 {
		score += 10
	}
	if len(feed.LiveItems) > 0 {
		score += 20
	}
	if channel.Value != nil {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// BuildReport produces the readiness report with per-feature statuses.
func BuildReport(feed *domain.Feed) Report {
	channel := feed.Channel
	total := len(feed.Episodes)
	withValue := 0
	withChapters := 0
	withPersons := 0
	for _, episode := range feed.Episodes {
		if episode.Value != nil {
			withValue++
		}
		if episode.ChaptersURL != "" {
			withChapters++
		}
		if len(episode.Persons) > 0 {
			withPersons++
		}
	}

	features := []FeatureStatus{
		presence("podcast:guid", channel.GUID != ""),
		presence("podcast:medium", channel.Medium != ""),
		presence("channel value block", channel.Value != nil),
		coverage("episode value blocks", withValue, total),
		coverage("episode chapters", withChapters, total),
		coverage("episode person tags", withPersons, total),
		presence("live items", len(feed.LiveItems) > 0),
	}

	score := Score(feed)
	status := "needs work"
	switch {
	case score >= 80:
		status = "excellent"
	case score >= 60:
		status = "good"
	}

	return Report{Score: score, Status: status, Features: features}
}

func presence(feature string, present bool) FeatureStatus {
	status := StatusMissing
	if present {
		status = StatusPresent
	}
	return FeatureStatus{Feature: feature, Status: status}
}

func coverage(feature string, have, total int) FeatureStatus {
	switch {
	case total == 0 || have == 0:
		return FeatureStatus{Feature: feature, Status: StatusMissing}
	case have == total:
		return FeatureStatus{Feature: feature, Status: StatusPresent}
	default:
		return FeatureStatus{
			Feature: feature,
			Status:  StatusWarning,
			Detail:  "partial episode coverage",
		}
	}
}
