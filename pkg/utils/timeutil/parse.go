// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles various time formats commonly found in RSS feeds and live item attributes

package timeutil

import (
	"strings"
	"time"
)

// Common time formats found in RSS feeds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexible attempts to parse a time string using various formats,
// returning the zero time when none match.
func ParseFlexible(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}

	timeStr = strings.TrimSpace(timeStr)

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// FormatDisplay renders a feed date for display, or "Unknown" when the
// string is empty and "Invalid Date" when it cannot be parsed.
func FormatDisplay(timeStr string) string {
	if timeStr == "" {
		return "Unknown"
	}
	t := ParseFlexible(timeStr)
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.Format("1/2/2006 3:04:05 PM")
}
