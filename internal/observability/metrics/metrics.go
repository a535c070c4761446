package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking and cancellation flows.
type BookingMetrics struct {
	selectionsTotal  *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
	endpointTotal    *prometheus.CounterVec
	endpointLatency  *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		selectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbooking",
			Subsystem: "calendar",
			Name:      "selections_total",
			Help:      "Calendar selections by guard result",
		}, []string{"result"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbooking",
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Form submissions by flow and notice kind",
		}, []string{"flow", "outcome"}),
		endpointTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbooking",
			Subsystem: "endpoint",
			Name:      "requests_total",
			Help:      "Outbound script endpoint requests",
		}, []string{"endpoint", "result"}),
		endpointLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "slotbooking",
			Subsystem: "endpoint",
			Name:      "request_duration_seconds",
			Help:      "Latency of outbound script endpoint requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.selectionsTotal, m.submissionsTotal, m.endpointTotal, m.endpointLatency)
	return m
}

func (m *BookingMetrics) ObserveSelection(result string) {
	if m == nil {
		return
	}
	m.selectionsTotal.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveSubmission(flow, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(flow, outcome).Inc()
}

func (m *BookingMetrics) ObserveEndpoint(endpoint, result string, seconds float64) {
	if m == nil {
		return
	}
	m.endpointTotal.WithLabelValues(endpoint, result).Inc()
	m.endpointLatency.WithLabelValues(endpoint).Observe(seconds)
}
