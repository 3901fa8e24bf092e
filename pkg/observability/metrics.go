package observability

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Evaluations      *prometheus.CounterVec
	InputSymbols     *prometheus.HistogramVec
	Minimizations    *prometheus.CounterVec
	StatesRemoved    *prometheus.CounterVec
	MinimizeDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_evaluations_total",
				Help: "Total number of evaluated inputs",
			},
			[]string{"automaton", "verdict"},
		),
		InputSymbols: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_input_symbols",
				Help:    "Number of symbols per evaluated input",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"automaton"},
		),
		Minimizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_minimizations_total",
				Help: "Total number of minimizations",
			},
			[]string{"automaton", "strategy"},
		),
		StatesRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_states_removed_total",
				Help: "States merged away by minimization",
			},
			[]string{"automaton"},
		),
		MinimizeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_minimize_duration_seconds",
				Help:    "Duration of minimizations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Evaluations, m.InputSymbols, m.Minimizations, m.StatesRemoved, m.MinimizeDuration)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.EvaluationEvent) {
			m.Evaluations.WithLabelValues(e.Automaton, e.Evaluation.Verdict.String()).Inc()
			m.InputSymbols.WithLabelValues(e.Automaton).Observe(float64(e.Symbols))
		},
		OnMinimize: func(ctx context.Context, e *domain.MinimizeEvent) {
			m.Minimizations.WithLabelValues(e.Automaton, e.Strategy).Inc()
			if removed := e.StatesBefore - e.StatesAfter; removed > 0 {
				m.StatesRemoved.WithLabelValues(e.Automaton).Add(float64(removed))
			}
			m.MinimizeDuration.WithLabelValues(e.Strategy).Observe(e.Duration.Seconds())
		},
	}
}
