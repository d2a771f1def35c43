package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors exported on /metrics.
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	LoginAttempts *prometheus.CounterVec
	AuditQueued   prometheus.Counter
	AuditStored   prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asistnet",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "asistnet",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asistnet",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		AuditQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "asistnet",
			Name:      "profile_update_audit_queued_total",
			Help:      "Profile updates pushed onto the audit queue.",
		}),
		AuditStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "asistnet",
			Name:      "profile_update_audit_stored_total",
			Help:      "Profile update audit entries written to PostgreSQL.",
		}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.LoginAttempts, m.AuditQueued, m.AuditStored)
	return m
}
