package observability_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	q := domain.NewState("q")
	for _, eval := range []domain.Evaluation{domain.Accepted(q), domain.Accepted(q), domain.Rejected(q)} {
		hooks.OnEvaluate(ctx, &domain.EvaluationEvent{
			EventBase:  domain.EventBase{Type: domain.EventEvaluate, Automaton: "parity"},
			Input:      "01",
			Symbols:    2,
			Evaluation: eval,
		})
	}

	hooks.OnMinimize(ctx, &domain.MinimizeEvent{
		EventBase:    domain.EventBase{Type: domain.EventMinimize, Automaton: "parity"},
		Strategy:     "closure",
		StatesBefore: 5,
		StatesAfter:  3,
		Duration:     time.Millisecond,
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("parity", "accept")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("parity", "reject")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Minimizations.WithLabelValues("parity", "closure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StatesRemoved.WithLabelValues("parity")))

	expected := `
# HELP automata_minimizations_total Total number of minimizations
# TYPE automata_minimizations_total counter
automata_minimizations_total{automaton="parity",strategy="closure"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "automata_minimizations_total"))
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnMinimize(context.Background(), &domain.MinimizeEvent{Strategy: "symbol", StatesBefore: 2, StatesAfter: 2})
	assert.Equal(t, 0, testutil.CollectAndCount(m.StatesRemoved))
}
