package dsl

import (
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Parity(t *testing.T) {
	// 1. Build the automaton using the DSL
	b := New()

	b.State("even").Start().Accept().
		On("0", "odd").
		Loop("1")

	b.State("odd").
		On("0", "even").
		Loop("1")

	// 2. Compile
	dfa, err := b.Build()
	require.NoError(t, err)

	// 3. Verify
	even, odd := domain.NewState("even"), domain.NewState("odd")
	assert.Equal(t, even, dfa.Start())
	assert.Equal(t, []domain.State{even}, dfa.Accepting())
	assert.Equal(t, []domain.State{even, odd}, dfa.States())

	assert.Equal(t, domain.Accepted(even), dfa.Evaluate("1001"))
	assert.Equal(t, domain.Rejected(odd), dfa.Evaluate("10"))
}

func TestBuilder_MultiSymbolEdges(t *testing.T) {
	dfa, err := New().
		State("start").Start().
		On("-", "neg").
		On("123456789", "number").
		State("neg").
		On("123456789", "number").
		State("number").Accept().
		Loop("0123456789").
		Build()
	require.NoError(t, err)

	assert.True(t, dfa.Evaluate("-42").IsAccept())
	assert.True(t, dfa.Evaluate("7").IsAccept())
	assert.False(t, dfa.Evaluate("-").IsAccept())
	assert.Len(t, dfa.Transitions(), 1+9+9+10)
}

func TestBuilder_LastEdgeWins(t *testing.T) {
	dfa, err := New().
		State("a").Start().
		On("x", "b").
		On("x", "c").
		Build()
	require.NoError(t, err)

	assert.Equal(t, domain.NewState("c"), dfa.Move(domain.NewState("a"), 'x'))
}

func TestBuilder_RequiresStart(t *testing.T) {
	_, err := New().State("a").On("x", "b").Build()
	assert.ErrorIs(t, err, domain.ErrNoStartState)
}

func TestBuilder_StateIsReused(t *testing.T) {
	b := New()
	first := b.State("a")
	assert.Same(t, first, b.State("a"))
}
