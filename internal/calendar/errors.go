package calendar

import "errors"

var (
	// ErrInvalidRange is returned when a range does not start before it ends
	ErrInvalidRange = errors.New("calendar: range start must be before end")

	// ErrPastDate is returned when a selection starts before today's local midnight
	ErrPastDate = errors.New("calendar: selection starts in the past")

	// ErrOverlap is returned when a selection intersects an existing event
	ErrOverlap = errors.New("calendar: selection overlaps an existing event")

	// ErrOutsideGrid is returned when a range is not made of whole grid slots
	ErrOutsideGrid = errors.New("calendar: selection is outside the slot grid")
)
