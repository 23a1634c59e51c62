package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Validation outcomes used as the "outcome" label.
const (
	OutcomeValid      = "valid"
	OutcomeInvalid    = "invalid"
	OutcomeBadRequest = "bad_request"
	OutcomeUnknown    = "unknown_ruleset"
)

// Metrics records validation traffic.
type Metrics struct {
	Validations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the API metrics with reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldrules_validations_total",
			Help: "Validation requests by ruleset and outcome",
		}, []string{"ruleset", "outcome"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fieldrules_validation_duration_seconds",
			Help:    "Time spent validating a decoded document",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"ruleset"}),

		gatherer: reg,
	}
}

// IncrementOutcome counts one request for ruleset.
func (m *Metrics) IncrementOutcome(ruleset, outcome string) {
	if m != nil {
		m.Validations.WithLabelValues(ruleset, outcome).Inc()
	}
}

// ObserveDuration records how long a validation took.
func (m *Metrics) ObserveDuration(ruleset string, d time.Duration) {
	if m != nil {
		m.Duration.WithLabelValues(ruleset).Observe(d.Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
