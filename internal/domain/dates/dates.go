// Package dates provides ISO-date ("YYYY-MM-DD") parsing, comparison and
// day arithmetic for the progression engines.
//
// All functions operate on zero-padded ISO date strings, which compare
// lexically in chronological order. Dates represent local calendar days;
// no timezone conversion is ever applied. Malformed input is a caller
// error: functions degrade to zero values rather than panicking, and the
// exact results for malformed input are unspecified.
package dates

import (
	"strings"
	"time"
)

// Layout is the wire format for all dates handled by this package.
const Layout = "2006-01-02"

// Parse converts an ISO date string into a time.Time at midnight UTC.
// UTC is used purely as a fixed arithmetic frame; the value represents a
// calendar day, not an instant.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// Format converts a time value back into an ISO date string.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Valid reports whether s is a well-formed ISO date string.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare orders two ISO date strings chronologically, returning -1, 0 or
// +1. Zero-padded ISO dates order lexically, so this is a plain string
// comparison.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// AddDays returns the ISO date n days after s (n may be negative).
// Returns s unchanged if it does not parse.
func AddDays(s string, n int) string {
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return Format(t.AddDate(0, 0, n))
}

// DaysBetween returns the signed day difference b−a, so consecutive days
// yield 1. Returns 0 if either date is malformed.
func DaysBetween(a, b string) int {
	ta, err := Parse(a)
	if err != nil {
		return 0
	}
	tb, err := Parse(b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// DaysBetweenInclusive returns the number of calendar days covered by the
// inclusive range [a, b]. A range of a single day yields 1. Returns 0 for
// malformed input or when b precedes a.
func DaysBetweenInclusive(a, b string) int {
	d := DaysBetween(a, b)
	if d < 0 {
		return 0
	}
	if !Valid(a) || !Valid(b) {
		return 0
	}
	return d + 1
}
