package booking

import (
	"context"
	"sync"
	"time"

	"github.com/wolfman30/slot-booking/internal/calendar"
	"github.com/wolfman30/slot-booking/internal/form"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

const (
	submitLabel     = "この内容で予約する"
	submitBusyLabel = "送信中..."

	transportFailureText = "予約を送信できませんでした。通信状況を確認して、しばらくしてからもう一度お試しください。\n"
)

// Sender delivers a reservation to the remote endpoint. Delivery is opaque:
// a nil error only means the request left without a transport failure, not
// that the backend accepted it.
type Sender interface {
	SendReservation(ctx context.Context, req ReservationRequest) error
}

// ModalState is what the detail modal currently displays.
type ModalState struct {
	Open         bool                `json:"open"`
	Datetime     string              `json:"datetime,omitempty"`
	Pending      *calendar.TimeRange `json:"pending,omitempty"`
	FormVisible  bool                `json:"formVisible"`
	Details      ContactDetails      `json:"details"`
	Confirmation *Confirmation       `json:"confirmation,omitempty"`
	Submit       form.State          `json:"submit"`
}

// SubmitResult is the outcome of one submit attempt.
type SubmitResult struct {
	Notice       form.Notice     `json:"notice"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
	Event        *calendar.Event `json:"event,omitempty"`
}

// Modal collects contact details for a pending selection and submits them.
type Modal struct {
	calendar *calendar.Model
	sender   Sender
	location *time.Location
	logger   *logging.Logger
	metrics  *metrics.BookingMetrics
	control  *form.SubmitControl

	mu           sync.Mutex
	open         bool
	submitted    bool
	generation   uint64
	pending      *calendar.TimeRange
	details      ContactDetails
	confirmation *Confirmation
}

// NewModal creates a closed modal that appends bookings to model.
func NewModal(model *calendar.Model, sender Sender, loc *time.Location, logger *logging.Logger, m *metrics.BookingMetrics) *Modal {
	if model == nil {
		panic("booking: calendar model required")
	}
	if sender == nil {
		panic("booking: sender required")
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Modal{
		calendar: model,
		sender:   sender,
		location: loc,
		logger:   logger,
		metrics:  m,
		control:  form.NewSubmitControl(submitLabel, submitBusyLabel),
	}
}

// Open shows the modal for r.
func (m *Modal) Open(r calendar.TimeRange) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r = r.In(m.location)
	m.open = true
	m.submitted = false
	m.generation++
	m.pending = &r
	m.confirmation = nil
}

// Close hides the modal and resets the form and confirmation. An in-flight
// submission keeps the control disabled until it settles.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = false
	m.submitted = false
	m.generation++
	m.pending = nil
	m.details = ContactDetails{}
	m.confirmation = nil
}

// Submit sends the pending selection with details. Transport failures are
// reported through the returned notice and leave the modal open with the
// entered details intact. A selection is sent at most once: after a
// successful send Submit returns ErrNoSelection until the next Open.
func (m *Modal) Submit(ctx context.Context, details ContactDetails) (*SubmitResult, error) {
	if !m.control.Begin() {
		return nil, ErrSubmitInFlight
	}
	defer m.control.End()

	m.mu.Lock()
	if !m.open || m.pending == nil || m.submitted {
		m.mu.Unlock()
		return nil, ErrNoSelection
	}
	pending := *m.pending
	generation := m.generation
	m.details = details
	m.mu.Unlock()

	req, err := NewReservationRequest(pending, details, m.location)
	if err != nil {
		return nil, err
	}
	if m.calendar.Conflicts(pending) {
		return nil, calendar.ErrOverlap
	}

	if err := m.sender.SendReservation(ctx, req); err != nil {
		m.logger.Error("reservation send failed", "error", err, "date", req.Date, "start_time", req.StartTime)
		m.metrics.ObserveSubmission("reservation", string(form.NoticeTransportError))
		return &SubmitResult{
			Notice: form.Notice{Kind: form.NoticeTransportError, Text: transportFailureText + err.Error()},
		}, nil
	}

	m.logger.Info("reservation sent",
		"date", req.Date,
		"start_time", req.StartTime,
		"end_time", req.EndTime,
	)

	event, err := m.calendar.Add(calendar.Event{
		Title: EventTitle(details.Name),
		Start: pending.Start,
		End:   pending.End,
	})
	if err != nil {
		return nil, err
	}

	confirmation := newConfirmation(req)

	m.mu.Lock()
	if m.open && m.generation == generation {
		m.submitted = true
		m.confirmation = confirmation
	}
	m.mu.Unlock()

	m.metrics.ObserveSubmission("reservation", string(form.NoticeSuccess))
	return &SubmitResult{
		Notice:       form.Notice{Kind: form.NoticeSuccess, Text: confirmation.Message},
		Confirmation: confirmation,
		Event:        &event,
	}, nil
}

// State returns the current modal display.
func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := ModalState{
		Open:         m.open,
		FormVisible:  m.confirmation == nil,
		Details:      m.details,
		Confirmation: m.confirmation,
		Submit:       m.control.State(),
	}
	if m.pending != nil {
		p := *m.pending
		state.Pending = &p
		state.Datetime = FormatRange(p, m.location)
	}
	return state
}
