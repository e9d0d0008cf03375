// ABOUTME: Validation engine running independent rule groups over a feed model
// ABOUTME: Produces a flat findings list in a fixed group order, deterministically

package validate

import (
	"podcheck-api/core/domain"
	"podcheck-api/core/interfaces"
)

// Validate runs every rule group over the feed model and concatenates
// their findings in a fixed order. It is pure and deterministic: the
// same model yields the same list, same order, on every call. Rules
// read the model and nothing else; none of them mutate it or depend on
// another rule having run.
func Validate(feed *domain.Feed) []domain.Finding {
	findings := []domain.Finding{}
	findings = append(findings, checkBasicRSS(feed)...)
	findings = append(findings, checkPodcastNamespace(feed)...)
	findings = append(findings, checkValue4Value(feed)...)
	findings = append(findings, checkLiveItems(feed.LiveItems)...)
	findings = append(findings, checkEpisodeConsistency(feed.Episodes)...)
	return findings
}

// ValidateAndLog runs Validate and emits one structured event with the
// per-severity counts, for callers that carry a logger.
func ValidateAndLog(feed *domain.Feed, logger interfaces.Logger) []domain.Finding {
	findings := Validate(feed)
	if logger != nil {
		counts := domain.CountBySeverity(findings)
		logger.Info("Validation completed", map[string]interface{}{
			"findings": len(findings),
			"errors":   counts[domain.SeverityError],
			"warnings": counts[domain.SeverityWarning],
			"info":     counts[domain.SeverityInfo],
		})
	}
	return findings
}

func finding(severity, title, message string) domain.Finding {
	return domain.Finding{Type: severity, Title: title, Message: message}
}
