package db

import (
	"fmt"
	"time"
)

// Dates are persisted as canonical ISO-8601 text in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime accepts the canonical form plus the zone-less variants older
// rows may carry (naive timestamps and bare dates).
func parseTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}
