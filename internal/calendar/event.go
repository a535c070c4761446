package calendar

import "time"

// DisplayBackground marks an event used only for visual blocking. Background
// events never count as conflicts.
const DisplayBackground = "background"

// Event is an entry on the calendar grid.
type Event struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display,omitempty"`
}

func (e Event) Range() TimeRange {
	return TimeRange{Start: e.Start, End: e.End}
}

// Background reports whether the event is excluded from conflict checks.
func (e Event) Background() bool {
	return e.Display == DisplayBackground
}
