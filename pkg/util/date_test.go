package util

import (
	"testing"
	"time"

	"MacroPulse/internal/domain/econerr"
)

func TestParseDateCalendar(t *testing.T) {
	got, err := ParseDate("2023-02-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2023 || got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got, err := ParseDate("2024-10-10T10:10:10Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UTC().Format(time.RFC3339) != "2024-10-10T10:10:10Z" {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("02/01/2023")
	if err == nil {
		t.Fatalf("expected error")
	}
	if econerr.KindOf(err) != econerr.KindInvalidDateFormat {
		t.Fatalf("unexpected kind %v", econerr.KindOf(err))
	}
}

func TestParseRangeOrdering(t *testing.T) {
	_, _, err := ParseRange("2023-06-01", "2023-01-01")
	if econerr.KindOf(err) != econerr.KindInvalidDateRange {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestSamePeriod(t *testing.T) {
	a := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	b := time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC)
	c := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	if !SameMonth(a, b) || SameMonth(a, c) {
		t.Fatalf("SameMonth mismatch")
	}
	if !SameQuarter(a, b) || SameQuarter(a, c) {
		t.Fatalf("SameQuarter mismatch")
	}
	if !SameYear(a, c) {
		t.Fatalf("SameYear mismatch")
	}
	if QuarterOf(c) != 1 {
		t.Fatalf("QuarterOf = %d", QuarterOf(c))
	}
}
