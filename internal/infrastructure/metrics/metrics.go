// Package metrics exposes the Prometheus collectors of the policy core.
//
// A nil *Metrics is valid and records nothing, so tests and tools can skip
// wiring a registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aseguraopen"

type Metrics struct {
	transitions  *prometheus.CounterVec
	conflicts    *prometheus.CounterVec
	offers       *prometheus.CounterVec
	collaborator *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_transitions_total",
			Help:      "Committed policy state transitions.",
		}, []string{"from_state", "to_state"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_conflicts_total",
			Help:      "Conditional writes rejected because the policy changed concurrently.",
		}, []string{"operation"}),
		offers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotation_offers_generated_total",
			Help:      "Quotation offers persisted by the quotation engine.",
		}, []string{"insurance_type"}),
		collaborator: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collaborator_call_duration_seconds",
			Help:      "Duration of calls to external collaborators.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collaborator", "outcome"}),
	}
	reg.MustRegister(m.transitions, m.conflicts, m.offers, m.collaborator)
	return m
}

func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveConflict(operation string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveOffers(insuranceType string, n int) {
	if m == nil {
		return
	}
	m.offers.WithLabelValues(insuranceType).Add(float64(n))
}

// ObserveCollaborator records the duration since start. outcome is "ok" or
// "error".
func (m *Metrics) ObserveCollaborator(name string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.collaborator.WithLabelValues(name, outcome).Observe(time.Since(start).Seconds())
}
