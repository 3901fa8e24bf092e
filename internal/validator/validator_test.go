package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, b *dsl.Builder) *automaton.DFA {
	t.Helper()
	dfa, err := b.Build()
	require.NoError(t, err)
	return dfa
}

func TestValidate(t *testing.T) {
	// 1. Scenario A: complete and connected
	b := dsl.New()
	b.State("even").Start().Accept().On("0", "odd").Loop("1")
	b.State("odd").On("0", "even").Loop("1")

	dfa := build(t, b)
	assert.Empty(t, Inspect(dfa))
	assert.NoError(t, Validate(dfa, true))

	// 2. Scenario B: orphan start and accept
	b = dsl.New()
	b.State("lonely").Start()
	b.State("ghost").Accept()
	b.State("a").On("x", "b")

	dfa = build(t, b)
	issues := Inspect(dfa)
	kinds := map[Kind]int{}
	for _, issue := range issues {
		kinds[issue.Kind]++
	}
	assert.Equal(t, 1, kinds[KindOrphanStart])
	assert.Equal(t, 1, kinds[KindOrphanAccept])
	// a and b are not reachable from the orphan start state.
	assert.Equal(t, 2, kinds[KindUnreachable])
	// b has no transition on x.
	assert.Equal(t, 1, kinds[KindImplicitLoop])

	err := Validate(dfa, false)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "found 4 errors"), err.Error())
	assert.Contains(t, err.Error(), "start state 'lonely' has no transitions")
}

func TestValidate_ImplicitLoopsOnlyInStrictMode(t *testing.T) {
	b := dsl.New()
	b.State("q0").Start().On("a", "q1")
	b.State("q1").Accept().On("b", "q0")

	dfa := build(t, b)
	assert.NoError(t, Validate(dfa, false))

	err := Validate(dfa, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state 'q0' stays put on b")
	assert.Contains(t, err.Error(), "state 'q1' stays put on a")
}
