// ABOUTME: Cross-episode consistency checks for numbering and feature adoption
// ABOUTME: Flags numbering gaps, ordering problems and uneven namespace usage

package validate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"podcheck-api/core/domain"
	"podcheck-api/pkg/utils/episode"
)

func checkEpisodeConsistency(episodes []domain.Episode) []domain.Finding {
	var findings []domain.Finding

	var numbers []int
	for _, ep := range episodes {
		if n, ok := episode.NumberFromTitle(ep.Title); ok {
			numbers = append(numbers, n)
		}
	}

	if len(numbers) > 0 {
		if !sort.IntsAreSorted(numbers) && !isReverseSorted(numbers) {
			findings = append(findings, finding(domain.SeverityWarning,
				"Episode Numbering",
				"Episode numbers are not in chronological order - this may confuse listeners"))
		}

		if missing := missingNumbers(numbers); len(missing) > 0 {
			findings = append(findings, finding(domain.SeverityInfo,
				"Episode Numbering",
				fmt.Sprintf("Missing episode numbers: %s", joinInts(missing))))
		}
	}

	withChapters := 0
	withPersons := 0
	withValue := 0
	for _, ep := range episodes {
		if ep.ChaptersURL != "" {
			withChapters++
		}
		if len(ep.Persons) > 0 {
			withPersons++
		}
		if ep.Value != nil {
			withValue++
		}
	}

	total := len(episodes)
	if withChapters > 0 && withChapters < total {
		findings = append(findings, finding(domain.SeverityWarning,
			"Inconsistent Chapters",
			fmt.Sprintf("%d/%d episodes have chapters - consider adding to all episodes", withChapters, total)))
	}
	if withPersons > 0 && withPersons < total {
		findings = append(findings, finding(domain.SeverityWarning,
			"Inconsistent Person Tags",
			fmt.Sprintf("%d/%d episodes have person tags - consider adding to all episodes", withPersons, total)))
	}
	if withValue > 0 && withValue < total {
		findings = append(findings, finding(domain.SeverityWarning,
			"Inconsistent Value4Value",
			fmt.Sprintf("%d/%d episodes have value4value - consider adding to all episodes", withValue, total)))
	}

	return findings
}

// isReverseSorted accepts newest-first feeds, where numbers descend
func isReverseSorted(numbers []int) bool {
	for i := 1; i < len(numbers); i++ {
		if numbers[i] > numbers[i-1] {
			return false
		}
	}
	return true
}

func missingNumbers(numbers []int) []int {
	present := make(map[int]bool, len(numbers))
	max := 0
	for _, n := range numbers {
		present[n] = true
		if n > max {
			max = n
		}
	}

	var missing []int
	for i := 1; i <= max; i++ {
		if !present[i] {
			missing = append(missing, i)
		}
	}
	return missing
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
