package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSource("ares", 120*time.Millisecond, nil)
	m.ObserveSource("ares", 80*time.Millisecond, errors.New("boom"))
	m.ObserveSource("justice", time.Second, nil)
	m.IncrementLookup(200)
	m.IncrementLookup(200)
	m.IncrementLookup(502)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceOutcome.WithLabelValues("ares", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceOutcome.WithLabelValues("ares", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceOutcome.WithLabelValues("justice", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupStatus.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupStatus.WithLabelValues("502")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SourceLatency))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSource("ares", time.Second, nil)
		m.IncrementLookup(400)
	})
}
