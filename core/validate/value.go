// ABOUTME: Value4Value conformance checks for channel, episode and live item value blocks
// ABOUTME: Enforces the 100% split-sum invariant and Lightning address shape

package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"podcheck-api/core/domain"
)

// splitTolerance absorbs floating-point representation of percentages
const splitTolerance = 0.01

var lightningAddressPattern = regexp.MustCompile(`^0[235][0-9a-fA-F]{64}$`)

func checkValue4Value(feed *domain.Feed) []domain.Finding {
	var findings []domain.Finding

	if feed.Channel.Value != nil {
		findings = append(findings, checkValueBlock(feed.Channel.Value, "Channel")...)
	}
	for i, episode := range feed.Episodes {
		if episode.Value != nil {
			findings = append(findings, checkValueBlock(episode.Value, fmt.Sprintf("Episode %d", i+1))...)
		}
	}
	for i, liveItem := range feed.LiveItems {
		if liveItem.Value != nil {
			findings = append(findings, checkValueBlock(liveItem.Value, fmt.Sprintf("Live Item %d", i+1))...)
		}
	}

	return findings
}

func checkValueBlock(value *domain.ValueBlock, context string) []domain.Finding {
	var findings []domain.Finding

	if value.Type == "" {
		findings = append(findings, finding(domain.SeverityWarning,
			fmt.Sprintf("%s: Missing Value Type", context),
			`podcast:value should specify type (e.g., "lightning")`))
	}
	if value.Method == "" {
		findings = append(findings, finding(domain.SeverityWarning,
			fmt.Sprintf("%s: Missing Value Method", context),
			`podcast:value should specify method (e.g., "keysend")`))
	}

	if len(value.Recipients) == 0 {
		findings = append(findings, finding(domain.SeverityError,
			fmt.Sprintf("%s: No Value Recipients", context),
			"podcast:value must have at least one recipient"))
		return findings
	}

	total := 0.0
	for _, recipient := range value.Recipients {
		if split, err := strconv.ParseFloat(recipient.Split, 64); err == nil {
			total += split
		}
	}
	if math.Abs(total-100) > splitTolerance {
		findings = append(findings, finding(domain.SeverityWarning,
			fmt.Sprintf("%s: Split Total", context),
			fmt.Sprintf("Recipient splits total %s%% (should be 100%%)",
				strconv.FormatFloat(total, 'f', -1, 64))))
	}

	for i, recipient := range value.Recipients {
		if recipient.Name == "" {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("%s: Recipient %d", context, i+1),
				"Recipient name is recommended for identification"))
		}
		if recipient.Address == "" {
			findings = append(findings, finding(domain.SeverityError,
				fmt.Sprintf("%s: Recipient %d", context, i+1),
				"Lightning Network address is required"))
		} else if !lightningAddressPattern.MatchString(recipient.Address) {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("%s: Recipient %d", context, i+1),
				"Lightning address format may be invalid"))
		}
		if recipient.Split == "" {
			findings = append(findings, finding(domain.SeverityWarning,
				fmt.Sprintf("%s: Recipient %d", context, i+1),
				"Split percentage is recommended"))
		}
	}

	return findings
}
