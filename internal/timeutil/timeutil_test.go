package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-03-28")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-03-28" {
		t.Fatalf("expected round trip, got %s", got)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	if _, err := ParseDate("03/28/2024"); err == nil {
		t.Fatalf("expected error for non-canonical layout")
	}
}

func TestFormatClockConvertsToLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed loading location: %v", err)
	}

	// 20:10 UTC during DST is 4:10 PM in the east.
	instant := time.Date(2024, 3, 28, 20, 10, 0, 0, time.UTC)
	if got := FormatClock(instant, loc); got != "04:10 PM" {
		t.Fatalf("expected 04:10 PM, got %s", got)
	}
	if got := FormatClock(instant, nil); got != "08:10 PM" {
		t.Fatalf("expected UTC fallback 08:10 PM, got %s", got)
	}
}

func TestEasternNeverNil(t *testing.T) {
	if Eastern() == nil {
		t.Fatalf("expected a location")
	}
}
