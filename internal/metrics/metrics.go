package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics provides observability for company lookups.
type Metrics struct {
	// Upstream fetch latencies by source
	SourceLatency *prometheus.HistogramVec

	// Upstream fetch outcomes by source
	SourceOutcome *prometheus.CounterVec

	// Lookup responses by status code
	LookupStatus *prometheus.CounterVec
}

// New registers the lookup metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SourceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cz_company_source_duration_seconds",
			Help:    "Duration of upstream fetches by source",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}), // source: "ares", "justice", "beneficial"

		SourceOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cz_company_source_outcomes_total",
			Help: "Total upstream fetch outcomes by source",
		}, []string{"source", "outcome"}),

		LookupStatus: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cz_company_lookups_total",
			Help: "Total lookup responses by HTTP status",
		}, []string{"status"}),
	}
}

// ObserveSource records the duration and outcome of one upstream fetch.
func (m *Metrics) ObserveSource(source string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.SourceLatency.WithLabelValues(source).Observe(d.Seconds())
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.SourceOutcome.WithLabelValues(source, outcome).Inc()
}

// IncrementLookup records a lookup response.
func (m *Metrics) IncrementLookup(status int) {
	if m != nil {
		m.LookupStatus.WithLabelValues(strconv.Itoa(status)).Inc()
	}
}
