package booking

import "errors"

var (
	// ErrInvalidName is returned when the name is blank
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidEmail is returned when the email is blank or malformed
	ErrInvalidEmail = errors.New("a valid email is required")

	// ErrInvalidPhone is returned when the phone is blank
	ErrInvalidPhone = errors.New("phone is required")

	// ErrNoSelection is returned when submitting without an open modal
	ErrNoSelection = errors.New("no time range selected")

	// ErrSubmitInFlight is returned while a previous submission is still being sent
	ErrSubmitInFlight = errors.New("a reservation is already being sent")
)
