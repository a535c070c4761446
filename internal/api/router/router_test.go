package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/cancellation"
	httpmiddleware "github.com/wolfman30/slot-booking/internal/http/middleware"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/internal/session"
	"github.com/wolfman30/slot-booking/internal/web"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

type noopSender struct{}

func (noopSender) SendReservation(ctx context.Context, req booking.ReservationRequest) error {
	return nil
}

type okClient struct{}

func (okClient) SendCancellation(ctx context.Context, req cancellation.Request) (*cancellation.Response, error) {
	return &cancellation.Response{StatusCode: http.StatusOK, Body: []byte(`{"status":"success"}`)}, nil
}

func newTestRouter(t *testing.T, limiter *httpmiddleware.RateLimiter) http.Handler {
	t.Helper()

	logger := logging.Discard()
	loc := time.UTC
	reg := prometheus.NewRegistry()
	m := metrics.NewBookingMetrics(reg)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	pages := session.NewStore(time.Hour, func() *booking.Page {
		return booking.NewPage(booking.PageConfig{Sender: noopSender{}, Location: loc, Logger: logger, Metrics: m})
	})
	forms := session.NewStore(time.Hour, func() *cancellation.Form {
		return cancellation.NewForm(okClient{}, loc, logger, m)
	})

	return New(&Config{
		Logger:              logger,
		BookingHandler:      booking.NewHandler(pages, renderer, loc, logger),
		CancellationHandler: cancellation.NewHandler(forms, renderer, logger),
		StaticHandler:       web.Static(),
		MetricsHandler:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		RateLimiter:         limiter,
	})
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestRouterServesPages(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, path := range []string{"/", "/cancel", "/static/booking.js"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestRouterTimeOptions(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/cancellations/time-options", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp cancellation.TimeOptionsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Options, 28)
}

func TestRouterCancellationSubmit(t *testing.T) {
	router := newTestRouter(t, nil)

	body, err := json.Marshal(cancellation.Input{Date: "2030-06-10", StartTime: "09:30", Name: "山田"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/cancellations", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp cancellation.SubmitResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Notice.OK())
}

func TestRouterRateLimitsWrites(t *testing.T) {
	router := newTestRouter(t, httpmiddleware.NewRateLimiter(0.001, 1))

	post := func() int {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/booking/modal/close", nil))
		return rr.Code
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/booking/modal", nil))
	assert.Equal(t, http.StatusOK, rr.Code, "reads are not limited")
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
