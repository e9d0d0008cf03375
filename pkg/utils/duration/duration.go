// ABOUTME: Duration parsing and formatting for the mixed forms found in podcast feeds
// ABOUTME: Accepts H:MM:SS, MM:SS and plain-seconds strings

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeconds converts a duration string to whole seconds. Accepts
// "1:02:03", "5:30" and "45" forms; empty or unparsable input yields 0.
func ParseSeconds(durationStr string) int {
	if durationStr == "" {
		return 0
	}

	parts := strings.Split(strings.TrimSpace(durationStr), ":")
	switch len(parts) {
	case 3:
		hours, _ := strconv.Atoi(parts[0])
		minutes, _ := strconv.Atoi(parts[1])
		seconds, _ := strconv.Atoi(parts[2])
		return hours*3600 + minutes*60 + seconds
	case 2:
		minutes, _ := strconv.Atoi(parts[0])
		seconds, _ := strconv.Atoi(parts[1])
		return minutes*60 + seconds
	default:
		seconds, _ := strconv.Atoi(parts[0])
		return seconds
	}
}

// Format renders a duration in seconds for display. Zero means the
// duration was missing and renders as "Unknown".
func Format(seconds int) string {
	if seconds == 0 {
		return "Unknown"
	}
	return Clock(seconds)
}

// Clock renders seconds as H:MM:SS, or M:SS under an hour. Unlike
// Format, zero is a valid instant ("0:00") rather than a missing value.
func Clock(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
