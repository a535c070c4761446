package booking

import (
	"net/mail"
	"strings"
	"time"

	"github.com/wolfman30/slot-booking/internal/calendar"
)

// ContactDetails are the fields collected by the detail modal.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate applies the same checks the form inputs enforce: every field is
// required and the email must parse as an address.
func (d ContactDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(d.Email) == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(d.Phone) == "" {
		return ErrInvalidPhone
	}
	return nil
}

// ReservationRequest is the payload sent to the reservation endpoint.
type ReservationRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// NewReservationRequest builds the payload for r using the local calendar
// date and wall-clock times in loc.
func NewReservationRequest(r calendar.TimeRange, d ContactDetails, loc *time.Location) (ReservationRequest, error) {
	if !r.Valid() {
		return ReservationRequest{}, calendar.ErrInvalidRange
	}
	if err := d.Validate(); err != nil {
		return ReservationRequest{}, err
	}
	r = r.In(loc)
	return ReservationRequest{
		Date:      r.Start.Format("2006-01-02"),
		StartTime: r.Start.Format("15:04"),
		EndTime:   r.End.Format("15:04"),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
	}, nil
}
