package service

import (
	"strings"
	"time"
)

// NormalizeDate truncates a timestamp to its calendar day at UTC midnight.
// No timezone conversion happens here: the caller owns picking the wall-clock
// day, we only discard the time-of-day component.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day gap from a to b. Both arguments must be
// normalized calendar days.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// CountWords counts whitespace-delimited non-empty tokens.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
