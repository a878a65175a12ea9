package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountersAndNilSafety(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveTransition("intake", "loaded")
	m.ObserveTransition("intake", "loaded")
	m.ObserveOffers("auto", 4)
	m.ObserveConflict("transition")
	m.ObserveCollaborator("mercadopago", time.Now(), errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("intake", "loaded")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.offers.WithLabelValues("auto")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts.WithLabelValues("transition")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.collaborator))

	var unset *Metrics
	assert.NotPanics(t, func() {
		unset.ObserveTransition("a", "b")
		unset.ObserveConflict("x")
		unset.ObserveOffers("auto", 1)
		unset.ObserveCollaborator("issuer", time.Now(), nil)
	})
}
