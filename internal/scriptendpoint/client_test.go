package scriptendpoint

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/cancellation"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

func newTestClient(reservationURL, cancellationURL string) *Client {
	return NewClient(Config{ReservationURL: reservationURL, CancellationURL: cancellationURL},
		logging.Discard(), metrics.NewBookingMetrics(prometheus.NewRegistry()))
}

var reservation = booking.ReservationRequest{
	Date:      "2024-06-10",
	StartTime: "09:00",
	EndTime:   "10:00",
	Name:      "山田",
	Email:     "yamada@example.com",
	Phone:     "090-0000-0000",
}

func TestSendReservation(t *testing.T) {
	var gotContentType string
	var got booking.ReservationRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")
	require.NoError(t, c.SendReservation(context.Background(), reservation))
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, reservation, got)
}

func TestSendReservationIgnoresServerRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slot already taken", http.StatusConflict)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")
	assert.NoError(t, c.SendReservation(context.Background(), reservation),
		"reservation replies are opaque; only transport failures surface")
}

func TestSendReservationTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := newTestClient(url, "")
	err := c.SendReservation(context.Background(), reservation)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scriptendpoint: http request")
}

func TestSendReservationMissingURL(t *testing.T) {
	c := newTestClient("", "")
	assert.Error(t, c.SendReservation(context.Background(), reservation))
}

func TestSendCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"cancel","name":"佐藤","date":"2024-06-10","startTime":"09:00"}`, string(raw))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"done"}`))
	}))
	defer ts.Close()

	c := newTestClient("", ts.URL)
	resp, err := c.SendCancellation(context.Background(), cancellation.Request{
		Type: "cancel", Name: "佐藤", Date: "2024-06-10", StartTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.JSONEq(t, `{"status":"success","message":"done"}`, string(resp.Body))
}

func TestSendCancellationHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Server Error"))
	}))
	defer ts.Close()

	c := newTestClient("", ts.URL)
	resp, err := c.SendCancellation(context.Background(), cancellation.Request{Type: "cancel"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.Equal(t, "Internal Server Error", string(resp.Body))
}

func TestSendCancellationEndToEndNotice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failed","message":"slot not found"}`))
	}))
	defer ts.Close()

	c := newTestClient("", ts.URL)
	f := cancellation.NewForm(c, nil, logging.Discard(), nil)
	notice, err := f.Submit(context.Background(), cancellation.Input{Date: "2024-06-10", StartTime: "09:00", Name: "佐藤"})
	require.NoError(t, err)
	assert.Contains(t, notice.Text, "slot not found")
}
