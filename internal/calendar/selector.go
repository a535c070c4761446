package calendar

import "time"

// Selector applies the selection guard to ranges picked on the grid and hands
// accepted ranges to the registered select handler. It keeps no selection
// state of its own: once a range is handed off the grid highlight is gone.
type Selector struct {
	model    *Model
	location *time.Location
	now      func() time.Time
	onSelect func(TimeRange)
}

// NewSelector builds a selector over model. now supplies the current time and
// defaults to time.Now.
func NewSelector(model *Model, loc *time.Location, now func() time.Time) *Selector {
	if model == nil {
		panic("calendar: model required")
	}
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Selector{model: model, location: loc, now: now}
}

// OnSelect registers the handler invoked for every accepted selection.
func (s *Selector) OnSelect(fn func(TimeRange)) {
	s.onSelect = fn
}

// Allow reports whether r may be selected. A selection is refused when it
// starts before today's local midnight or overlaps a non-background event.
func (s *Selector) Allow(r TimeRange) error {
	if !r.Valid() {
		return ErrInvalidRange
	}
	if r.Start.Before(StartOfDay(s.now(), s.location)) {
		return ErrPastDate
	}
	if s.model.Conflicts(r) {
		return ErrOverlap
	}
	return nil
}

// Select validates r and passes it to the select handler.
func (s *Selector) Select(r TimeRange) (TimeRange, error) {
	if err := s.Allow(r); err != nil {
		return TimeRange{}, err
	}
	r = r.In(s.location)
	if s.onSelect != nil {
		s.onSelect(r)
	}
	return r, nil
}
