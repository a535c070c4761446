package calendar

import "time"

const (
	DefaultOpen         = 7 * time.Hour
	DefaultClose        = 21 * time.Hour
	DefaultSlotDuration = 30 * time.Minute
)

// Grid describes the bookable day: the first and last slot boundary as
// offsets from local midnight, and the slot granularity.
type Grid struct {
	Open     time.Duration
	Close    time.Duration
	Slot     time.Duration
	Location *time.Location
}

// DefaultGrid is the 07:00-21:00 grid in 30 minute slots.
func DefaultGrid(loc *time.Location) Grid {
	if loc == nil {
		loc = time.Local
	}
	return Grid{
		Open:     DefaultOpen,
		Close:    DefaultClose,
		Slot:     DefaultSlotDuration,
		Location: loc,
	}
}

// at returns the wall-clock instant offset from midnight of day.
func (g Grid) at(day time.Time, offset time.Duration) time.Time {
	day = day.In(g.Location)
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, g.Location)
}

// Slots enumerates every slot of the calendar day containing day.
func (g Grid) Slots(day time.Time) []TimeRange {
	if g.Slot <= 0 || g.Close <= g.Open {
		return nil
	}
	slots := make([]TimeRange, 0, int((g.Close-g.Open)/g.Slot))
	for off := g.Open; off+g.Slot <= g.Close; off += g.Slot {
		slots = append(slots, TimeRange{Start: g.at(day, off), End: g.at(day, off+g.Slot)})
	}
	return slots
}

// Week returns the seven days, at local midnight, of the week containing
// anchor. Weeks start on Sunday.
func (g Grid) Week(anchor time.Time) []time.Time {
	first := StartOfDay(anchor, g.Location)
	first = first.AddDate(0, 0, -int(first.Weekday()))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// Aligned reports whether r lies within a single bookable day and both ends
// fall on slot boundaries.
func (g Grid) Aligned(r TimeRange) bool {
	if !r.Valid() || g.Slot <= 0 {
		return false
	}
	r = r.In(g.Location)
	if !StartOfDay(r.Start, g.Location).Equal(StartOfDay(r.End, g.Location)) {
		return false
	}
	start, ok := g.offset(r.Start)
	if !ok {
		return false
	}
	end, ok := g.offset(r.End)
	if !ok {
		return false
	}
	return start >= g.Open && end <= g.Close
}

func (g Grid) offset(t time.Time) (time.Duration, bool) {
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return 0, false
	}
	off := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	if (off-g.Open)%g.Slot != 0 {
		return 0, false
	}
	return off, true
}
