// Package dates centralizes the timestamp and calendar-day formats
// accepted on the API surface.
package dates

import (
	"fmt"
	"time"
)

// DayFormat is the calendar-day layout used for range filters and
// statistics bucket keys.
const DayFormat = "2006-01-02"

// timestampFormats are tried in order when parsing a transaction
// timestamp. Browser datetime-local inputs produce the minute-precision
// form without a zone.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	DayFormat,
}

// ParseTimestamp parses s against the accepted timestamp layouts.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ParseDay parses a calendar day in DayFormat, strictly.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return t, nil
}

// Day formats t as its calendar day.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}
