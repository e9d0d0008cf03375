// ABOUTME: File size formatting for enclosure byte lengths
// ABOUTME: Renders human-readable sizes with two-decimal precision

package filesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var units = []string{"Bytes", "KB", "MB", "GB"}

// Format renders an enclosure length string as a human-readable size.
// Empty or unparsable lengths render as "Unknown".
func Format(length string) string {
	if length == "" {
		return "Unknown"
	}
	bytes, err := strconv.ParseInt(strings.TrimSpace(length), 10, 64)
	if err != nil {
		return "Unknown"
	}
	return FormatBytes(bytes)
}

// FormatBytes renders a byte count using the largest unit that keeps
// the value above one.
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(units) {
		exp = len(units) - 1
	}

	value := math.Round(float64(bytes)/math.Pow(1024, float64(exp))*100) / 100
	return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), units[exp])
}
