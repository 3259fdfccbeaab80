// Package timeutil parses the human-friendly campaign windows accepted on the
// command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "1w"

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":      1,
		"day":    1,
		"days":   1,
		"w":      7,
		"wk":     7,
		"wks":    7,
		"week":   7,
		"weeks":  7,
		"mo":     30,
		"month":  30,
		"months": 30,
	}
)

// ParseWindow parses a window such as "3d", "2w" or "1mo1w" into whole days,
// returning the count and a canonical label. Empty input means one week.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * per
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders days as week and day tokens, e.g. 9 -> "1w2d".
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}
