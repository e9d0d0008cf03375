// ABOUTME: Finding is the value type produced by the validation engine
// ABOUTME: Findings are plain data, never errors, and carry a fixed severity

package domain

// Finding severities. These are policy, assigned per rule, and never
// derived from data at runtime.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeveritySuccess = "success"
)

// Finding is a single validation result. Pure value, no identity; the
// engine regenerates the full list on every run.
type Finding struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CountBySeverity tallies findings per severity level.
func CountBySeverity(findings []Finding) map[string]int {
	counts := make(map[string]int, 4)
	for _, f := range findings {
		counts[f.Type]++
	}
	return counts
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Type == SeverityError {
			return true
		}
	}
	return false
}
