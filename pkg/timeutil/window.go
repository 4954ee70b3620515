// Package timeutil parses the day windows used by reports.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback report window used when none is provided.
	DefaultWindow = "1w"

	// AllTime is the window that covers every recorded day.
	AllTime = "all"

	// MaxWindowDays bounds a window; longer spans should use AllTime.
	MaxWindowDays = 100000
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseWindow parses a window such as "3d", "2w" or "1w3d" into a number of
// days and a compact label. An empty input is one week; "all" is zero days,
// meaning no bound.
func ParseWindow(input string) (int, string, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		lower = DefaultWindow
	}
	if lower == AllTime {
		return 0, AllTime, nil
	}

	remaining := lower
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil || value > MaxWindowDays {
			return 0, "", fmt.Errorf("invalid window value %q: at most %d days", matches[1], MaxWindowDays)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * per
		if total > MaxWindowDays {
			return 0, "", fmt.Errorf("window longer than %d days, use %q", MaxWindowDays, AllTime)
		}

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}

	return total, FormatWindow(total), nil
}

// FormatWindow renders a number of days using week and day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return AllTime
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

// FirstDay is the oldest day, in layout, that a window of days ending on
// today includes.
func FirstDay(today time.Time, days int, layout string) string {
	return today.AddDate(0, 0, -(days - 1)).Format(layout)
}
