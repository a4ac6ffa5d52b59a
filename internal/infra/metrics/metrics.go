// Package metrics exposes Prometheus instrumentation for the authentication service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for authentication attempts.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidRequest     = "invalid_request"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeUnavailable        = "directory_unavailable"
	OutcomeThrottled          = "throttled"
	OutcomeError              = "error"
)

// AuthMetrics contains the custom metrics recorded by the login and reset endpoints.
type AuthMetrics struct {
	registry *prometheus.Registry

	AttemptsTotal   *prometheus.CounterVec
	AttemptDuration *prometheus.HistogramVec
	ResetsTotal     *prometheus.CounterVec
}

// New creates the metrics on a dedicated registry with the standard Go and process collectors.
func New() *AuthMetrics {
	// A private registry keeps tests and multiple fx apps from colliding on the global one.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &AuthMetrics{
		registry: registry,
		AttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hrdesk_auth_attempts_total",
				Help: "Total number of authentication attempts by outcome",
			},
			[]string{"outcome"},
		),
		AttemptDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hrdesk_auth_attempt_duration_seconds",
				Help:    "Duration of authentication attempts by outcome",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		ResetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hrdesk_password_resets_total",
				Help: "Total number of password reset operations by action",
			},
			[]string{"action"},
		),
	}

	registry.MustRegister(m.AttemptsTotal, m.AttemptDuration, m.ResetsTotal)

	return m
}

// ObserveAttempt records one authentication attempt.
func (m *AuthMetrics) ObserveAttempt(outcome string, elapsed time.Duration) {
	m.AttemptsTotal.WithLabelValues(outcome).Inc()
	m.AttemptDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveReset records a password reset action ("requested" or "completed").
func (m *AuthMetrics) ObserveReset(action string) {
	m.ResetsTotal.WithLabelValues(action).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *AuthMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *AuthMetrics) Registry() *prometheus.Registry {
	return m.registry
}
