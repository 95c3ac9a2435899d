package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Relative date keywords accepted by ResolveDate.
const (
	Today     = "today"
	Yesterday = "yesterday"
	DayBefore = "day_before"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysAgo returns the calendar date n days before now, formatted.
func DaysAgo(now time.Time, n int) string {
	return FormatDate(now.AddDate(0, 0, -n))
}

// ResolveDate turns a keyword or YYYY-MM-DD value into a date string.
// An empty value means yesterday.
func ResolveDate(value string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", Yesterday:
		return DaysAgo(now, 1), nil
	case Today:
		return DaysAgo(now, 0), nil
	case DayBefore:
		return DaysAgo(now, 2), nil
	}

	parsed, err := ParseDate(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}
	return FormatDate(parsed), nil
}
