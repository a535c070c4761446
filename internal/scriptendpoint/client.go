package scriptendpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/cancellation"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

const (
	defaultTimeout = 20 * time.Second

	// Cap on how much of a cancellation reply is read into memory.
	maxResponseBytes = 1 << 20

	contentTypeReservation = "text/plain;charset=utf-8"
	contentTypeJSON        = "application/json"
)

var endpointTracer = otel.Tracer("slotbooking.internal.scriptendpoint")

// Config points the client at the two remote script deployments.
type Config struct {
	ReservationURL  string
	CancellationURL string
	Timeout         time.Duration
}

// Client posts reservations and cancellations to the remote script endpoints.
type Client struct {
	reservationURL  string
	cancellationURL string
	httpClient      *http.Client
	logger          *logging.Logger
	metrics         *metrics.BookingMetrics
}

// NewClient creates a client for cfg.
func NewClient(cfg Config, logger *logging.Logger, m *metrics.BookingMetrics) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		reservationURL:  cfg.ReservationURL,
		cancellationURL: cfg.CancellationURL,
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger.With("component", "scriptendpoint"),
		metrics:         m,
	}
}

// SendReservation posts req without reading the reply. The endpoint's status
// and body are discarded unread: only a transport failure is reported, so a
// nil error is not a delivery confirmation.
func (c *Client) SendReservation(ctx context.Context, req booking.ReservationRequest) error {
	ctx, span := endpointTracer.Start(ctx, "scriptendpoint.reservation", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("slotbooking.date", req.Date),
		attribute.String("slotbooking.start_time", req.StartTime),
	)

	start := time.Now()
	resp, err := c.post(ctx, c.reservationURL, contentTypeReservation, req)
	if err != nil {
		c.metrics.ObserveEndpoint("reservation", "transport_error", time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	c.metrics.ObserveEndpoint("reservation", "sent", time.Since(start).Seconds())
	c.logger.Debug("reservation delivered to endpoint", "date", req.Date, "start_time", req.StartTime)
	return nil
}

// SendCancellation posts req and returns the endpoint's reply as-is.
func (c *Client) SendCancellation(ctx context.Context, req cancellation.Request) (*cancellation.Response, error) {
	ctx, span := endpointTracer.Start(ctx, "scriptendpoint.cancellation", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("slotbooking.date", req.Date),
		attribute.String("slotbooking.start_time", req.StartTime),
	)

	start := time.Now()
	resp, err := c.post(ctx, c.cancellationURL, contentTypeJSON, req)
	if err != nil {
		c.metrics.ObserveEndpoint("cancellation", "transport_error", time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.ObserveEndpoint("cancellation", "transport_error", time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "read response")
		return nil, fmt.Errorf("scriptendpoint: read response: %w", err)
	}

	out := &cancellation.Response{StatusCode: resp.StatusCode, Body: body}
	result := "ok"
	if !out.OK() {
		result = "http_error"
		span.SetStatus(codes.Error, resp.Status)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.metrics.ObserveEndpoint("cancellation", result, time.Since(start).Seconds())
	return out, nil
}

func (c *Client) post(ctx context.Context, url, contentType string, payload any) (*http.Response, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("scriptendpoint: missing endpoint url")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("scriptendpoint: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("scriptendpoint: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scriptendpoint: http request: %w", err)
	}
	return resp, nil
}
