package cancellation

import (
	"context"
	"sync"
	"time"

	"github.com/wolfman30/slot-booking/internal/form"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

const (
	submitLabel     = "この内容でキャンセルする"
	submitBusyLabel = "処理中..."
)

// Client sends a cancellation and returns the endpoint's reply. A non-nil
// error means no reply was received.
type Client interface {
	SendCancellation(ctx context.Context, req Request) (*Response, error)
}

// State is what the cancellation form currently displays.
type State struct {
	Values      Input      `json:"values"`
	TimeOptions []string   `json:"timeOptions"`
	Submit      form.State `json:"submit"`
}

// Form is the standalone cancellation form.
type Form struct {
	client   Client
	location *time.Location
	logger   *logging.Logger
	metrics  *metrics.BookingMetrics
	control  *form.SubmitControl

	mu     sync.Mutex
	values Input
}

// NewForm creates an empty cancellation form.
func NewForm(client Client, loc *time.Location, logger *logging.Logger, m *metrics.BookingMetrics) *Form {
	if client == nil {
		panic("cancellation: client required")
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Form{
		client:   client,
		location: loc,
		logger:   logger,
		metrics:  m,
		control:  form.NewSubmitControl(submitLabel, submitBusyLabel),
		values:   Input{StartTime: TimeOptions()[0]},
	}
}

// Submit sends one cancellation and returns the notice to show. The submit
// control is re-enabled on every exit path.
func (f *Form) Submit(ctx context.Context, in Input) (form.Notice, error) {
	if !f.control.Begin() {
		return form.Notice{}, ErrSubmitInFlight
	}
	defer f.control.End()

	f.mu.Lock()
	f.values = in
	f.mu.Unlock()

	req, err := NewRequest(in, f.location)
	if err != nil {
		return form.Notice{}, err
	}

	notice := f.send(ctx, req)
	f.metrics.ObserveSubmission("cancellation", string(notice.Kind))

	if notice.OK() {
		f.Reset()
	}
	return notice, nil
}

func (f *Form) send(ctx context.Context, req Request) form.Notice {
	resp, err := f.client.SendCancellation(ctx, req)
	if err != nil {
		f.logger.Error("cancellation send failed", "error", err, "date", req.Date, "start_time", req.StartTime)
		return transportNotice(err)
	}

	notice := Interpret(resp)
	f.logger.Info("cancellation answered",
		"status_code", resp.StatusCode,
		"outcome", notice.Kind,
		"date", req.Date,
		"start_time", req.StartTime,
	)
	return notice
}

// Reset clears the form fields back to their initial values.
func (f *Form) Reset() {
	f.mu.Lock()
	f.values = Input{StartTime: TimeOptions()[0]}
	f.mu.Unlock()
}

func (f *Form) State() State {
	f.mu.Lock()
	values := f.values
	f.mu.Unlock()

	return State{
		Values:      values,
		TimeOptions: TimeOptions(),
		Submit:      f.control.State(),
	}
}
