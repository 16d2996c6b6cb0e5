package validation

import (
	"errors"
	"strings"
	"time"
)

var errDeadlineFormat = errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")

// Layouts without a zone are read in the board location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

const dateOnlyLayout = "2006-01-02"

// ParseDeadline normalizes a deadline string. Blank input means no deadline
// and returns nil. A date without a time is the last microsecond of that day
// in loc. The result is always UTC at microsecond precision, the precision
// of the DATETIME(6) deadline column.
func ParseDeadline(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC().Truncate(time.Microsecond)
		return &t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			t = t.UTC().Truncate(time.Microsecond)
			return &t, nil
		}
	}
	if day, err := time.ParseInLocation(dateOnlyLayout, raw, loc); err == nil {
		t := day.AddDate(0, 0, 1).Add(-time.Microsecond).UTC()
		return &t, nil
	}
	return nil, errDeadlineFormat
}
