package cancellation

import (
	"strings"
	"time"
)

// RequestType is the fixed discriminator the endpoint uses for cancellations.
const RequestType = "cancel"

// Input holds the raw form fields.
type Input struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Name      string `json:"name"`
}

// Request is the payload sent to the cancellation endpoint. It names a single
// half-hour slot by its start time.
type Request struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// NewRequest validates in and builds the outbound payload.
func NewRequest(in Input, loc *time.Location) (Request, error) {
	date, err := NormalizeDate(in.Date, loc)
	if err != nil {
		return Request{}, err
	}
	if !ValidStartTime(in.StartTime) {
		return Request{}, ErrInvalidStartTime
	}
	if strings.TrimSpace(in.Name) == "" {
		return Request{}, ErrInvalidName
	}
	return Request{
		Type:      RequestType,
		Name:      in.Name,
		Date:      date,
		StartTime: in.StartTime,
	}, nil
}
