package logfilter

import (
	"strings"
	"time"
)

// CursorLayout formats next_cursor values. It is also accepted as a bound.
const CursorLayout = "2006-01-02 15:04:05"

var boundLayouts = []string{
	CursorLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseBound parses a window bound. Bounds without a zone are taken as UTC.
func ParseBound(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range boundLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
