// Package observability exposes Prometheus metrics for roster changes.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess     = "success"
	ResultNotFound    = "not_found"
	ResultNotEnrolled = "not_enrolled"
	ResultError       = "error"
)

// Metrics groups the collectors recorded by the activity service.
type Metrics struct {
	signups *prometheus.CounterVec
	drops   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activities_service",
			Subsystem: "roster",
			Name:      "signups_total",
			Help:      "Signup attempts partitioned by result.",
		}, []string{"result"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activities_service",
			Subsystem: "roster",
			Name:      "drops_total",
			Help:      "Drop attempts partitioned by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.signups, m.drops)
	return m
}

// RecordSignup counts a signup attempt.
func (m *Metrics) RecordSignup(result string) {
	if m == nil {
		return
	}
	m.signups.WithLabelValues(result).Inc()
}

// RecordDrop counts a drop attempt.
func (m *Metrics) RecordDrop(result string) {
	if m == nil {
		return
	}
	m.drops.WithLabelValues(result).Inc()
}
