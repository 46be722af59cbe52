// Package metrics records generation outcomes in a private Prometheus
// registry that can be written out in the node_exporter textfile format.
package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeComposeError    = "compose_error"
	OutcomeRenderError     = "render_error"
)

// Metrics provides observability for generations.
type Metrics struct {
	registry *prometheus.Registry

	// Generation outcomes by result
	Generations *prometheus.CounterVec

	// Expressions repeated after exhausting attempts
	Duplicates prometheus.Counter

	// Symbols rendered with a placeholder
	Placeholders prometheus.Counter

	// Wall time of each stage
	StageLatency *prometheus.HistogramVec

	// Verification files that could not be written
	VerificationFailures prometheus.Counter
}

// New creates a Metrics instance registered on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dialogorithm_generations_total",
			Help: "Total generations by outcome",
		}, []string{"outcome"}),

		Duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: "dialogorithm_duplicate_expressions_total",
			Help: "Expressions repeated within one generation because the bank ran out of unused options",
		}),

		Placeholders: factory.NewCounter(prometheus.CounterOpts{
			Name: "dialogorithm_placeholder_expressions_total",
			Help: "Symbols rendered with a placeholder because the bank had no expressions for them",
		}),

		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dialogorithm_stage_duration_seconds",
			Help:    "Duration of each generation stage",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),

		VerificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dialogorithm_verification_failures_total",
			Help: "Verification files that could not be written",
		}),
	}
}

// Registry returns the registry the metrics live on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// IncrementOutcome records a finished generation.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Generations.WithLabelValues(outcome).Inc()
	}
}

// AddDegradations records the duplicates and placeholders of one generation.
func (m *Metrics) AddDegradations(duplicates, placeholders int) {
	if m == nil {
		return
	}
	if duplicates > 0 {
		m.Duplicates.Add(float64(duplicates))
	}
	if placeholders > 0 {
		m.Placeholders.Add(float64(placeholders))
	}
}

// ObserveStage records the duration of a stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncrementVerificationFailure records a verification file that was not written.
func (m *Metrics) IncrementVerificationFailure() {
	if m != nil {
		m.VerificationFailures.Inc()
	}
}

// WriteTextfile writes every metric to path in the text exposition format.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
