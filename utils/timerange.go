package utils

import (
	"fmt"
	"time"
)

// ParseRange turns start/end query params into an inclusive time range.
// Accepts RFC3339 or plain dates; a date-only end means end of that day.
// Empty start defaults to the epoch, empty end to now.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from := time.Unix(0, 0)
	to := time.Now()

	if start != "" {
		t, _, err := parseStamp(start)
		if err != nil {
			return from, to, fmt.Errorf("invalid start %q", start)
		}
		from = t
	}

	if end != "" {
		t, dateOnly, err := parseStamp(end)
		if err != nil {
			return from, to, fmt.Errorf("invalid end %q", end)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = t
	}

	return from, to, nil
}

func parseStamp(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", s)
	return t, true, err
}
