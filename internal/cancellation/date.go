package cancellation

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006年1月2日",
}

// NormalizeDate reads a date picker value and returns it as YYYY-MM-DD. Bare
// dates are taken as calendar dates in loc; timestamps are converted to loc
// first so the result is the picker's local day, never a UTC-shifted one.
func NormalizeDate(raw string, loc *time.Location) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidDate
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc).Format("2006-01-02"), nil
	}
	return "", ErrInvalidDate
}
