package calendar

import "time"

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the range starts strictly before it ends.
func (r TimeRange) Valid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether r and o share any instant.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && r.End.After(o.Start)
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// In returns the range with both ends expressed in loc.
func (r TimeRange) In(loc *time.Location) TimeRange {
	return TimeRange{Start: r.Start.In(loc), End: r.End.In(loc)}
}

// StartOfDay returns local midnight of the calendar day containing t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
