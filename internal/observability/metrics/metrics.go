package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
)

// Delivery paths for a dispatched lead.
const (
	PathLive        = "live"
	PathDevelopment = "development"
)

// LeadMetrics exposes counters/histograms for the contact form pipeline.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	dispatchTotal    *prometheus.CounterVec
	dispatchLatency  *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ondo",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ondo",
			Subsystem: "leads",
			Name:      "dispatch_total",
			Help:      "Lead notification dispatches by delivery path and status",
		}, []string{"path", "status"}),
		dispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ondo",
			Subsystem: "leads",
			Name:      "dispatch_latency_seconds",
			Help:      "Latency of the email provider call for one lead",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.dispatchTotal, m.dispatchLatency)
	return m
}

func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveDispatch(path string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dispatchTotal.WithLabelValues(path, status).Inc()
}

func (m *LeadMetrics) ObserveDispatchLatency(path string, seconds float64) {
	if m == nil {
		return
	}
	m.dispatchLatency.WithLabelValues(path).Observe(seconds)
}
