// ABOUTME: Episode number extraction from episode titles
// ABOUTME: Recognizes the conventional "Episode N" title form

package episode

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`(?i)Episode\s+(\d+)`)

// NumberFromTitle extracts the episode number from a title like
// "Episode 42: ...". The second return reports whether a number was
// present at all, since 0 is not a usable sentinel.
func NumberFromTitle(title string) (int, bool) {
	match := numberPattern.FindStringSubmatch(title)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
