package utils

import (
	"testing"
	"time"
)

func TestParseRangeDateOnlyEndIsInclusive(t *testing.T) {
	start, end, err := ParseRange("2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if start.Format("2006-01-02") != "2026-08-01" {
		t.Fatalf("start = %v", start)
	}

	lastMoment := time.Date(2026, 8, 31, 23, 30, 0, 0, time.UTC)
	if end.Before(lastMoment) {
		t.Fatalf("end %v excludes times on the end date", end)
	}
	if !end.Before(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end %v leaks into the next day", end)
	}
}

func TestParseRangeRFC3339(t *testing.T) {
	start, end, err := ParseRange("2026-08-01T10:00:00Z", "2026-08-01T12:00:00Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !end.Equal(start.Add(2 * time.Hour)) {
		t.Fatalf("range = %v..%v", start, end)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	if _, _, err := ParseRange("not-a-date", ""); err == nil {
		t.Fatal("invalid start accepted")
	}
	if _, _, err := ParseRange("", "31/08/2026"); err == nil {
		t.Fatal("invalid end accepted")
	}
}
