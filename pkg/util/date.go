package util

import (
	"time"

	"MacroPulse/internal/domain/econerr"
)

// DateLayout is the calendar-date format used across the API and generators.
const DateLayout = "2006-01-02"

// ParseDate tries YYYY-MM-DD, then RFC3339. Returns an INVALID_DATE_FORMAT
// error when neither layout matches.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, econerr.New(econerr.KindInvalidDateFormat, "empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, econerr.Newf(econerr.KindInvalidDateFormat, "invalid date %q", s)
}

// ParseRange parses both bounds and checks ordering.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, econerr.Newf(econerr.KindInvalidDateRange,
			"start %s after end %s", start, end)
	}
	return from, to, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// QuarterOf returns the zero-based calendar quarter of t.
func QuarterOf(t time.Time) int { return (int(t.Month()) - 1) / 3 }

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameQuarter reports whether a and b fall in the same calendar quarter.
func SameQuarter(a, b time.Time) bool {
	return a.Year() == b.Year() && QuarterOf(a) == QuarterOf(b)
}

// SameYear reports whether a and b fall in the same calendar year.
func SameYear(a, b time.Time) bool { return a.Year() == b.Year() }
