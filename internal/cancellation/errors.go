package cancellation

import "errors"

var (
	// ErrInvalidName is returned when the name is blank
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidDate is returned when the date cannot be read as a calendar date
	ErrInvalidDate = errors.New("date must be a calendar date such as 2024-06-10")

	// ErrInvalidStartTime is returned when the start time is not one of the offered options
	ErrInvalidStartTime = errors.New("start time must be a half-hour slot between 07:00 and 20:30")

	// ErrSubmitInFlight is returned while a previous cancellation is still being sent
	ErrSubmitInFlight = errors.New("a cancellation is already being sent")
)
