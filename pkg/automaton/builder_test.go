package automaton_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_RequiresStart(t *testing.T) {
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")

	_, err := automaton.NewBuilder().
		Transition(q0, 'a', q1).
		Accept(q1).
		Build()

	assert.ErrorIs(t, err, domain.ErrNoStartState)
}

func TestBuilder_LastWriteWins(t *testing.T) {
	q0, q1, q2 := domain.NewState("q0"), domain.NewState("q1"), domain.NewState("q2")

	dfa := mustBuild(t, automaton.NewBuilder().
		Start(q1).
		Start(q0).
		Transition(q0, 'a', q1).
		Transition(q0, 'a', q2))

	assert.Equal(t, q0, dfa.Start())
	assert.Equal(t, q2, dfa.Move(q0, 'a'))
	assert.Len(t, dfa.Transitions(), 1)
}

func TestBuilder_AcceptIsIdempotent(t *testing.T) {
	q0 := domain.NewState("q0")

	dfa := mustBuild(t, automaton.NewBuilder().
		Start(q0).
		Transition(q0, 'a', q0).
		Accept(q0).
		Accept(q0, domain.NewState("q0")))

	assert.Equal(t, []domain.State{q0}, dfa.Accepting())
}

func TestBuilder_SingleUse(t *testing.T) {
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")

	b := automaton.NewBuilder().Start(q0).Transition(q0, 'a', q1)
	dfa, err := b.Build()
	require.NoError(t, err)

	// Mutations after Build must not leak into the built automaton.
	b.Transition(q1, 'a', q0).Accept(q1).Start(q1)
	assert.Equal(t, q1, dfa.Move(q1, 'a'))
	assert.False(t, dfa.IsAccept(q1))
	assert.Equal(t, q0, dfa.Start())

	_, err = b.Build()
	assert.ErrorIs(t, err, automaton.ErrBuilderConsumed)
}

func TestBuilder_AllowsOrphanStates(t *testing.T) {
	q0, q1, lonely := domain.NewState("q0"), domain.NewState("q1"), domain.NewState("lonely")

	dfa := mustBuild(t, automaton.NewBuilder().
		Start(lonely).
		Transition(q0, 'a', q1).
		Accept(q1, lonely))

	assert.Equal(t, []domain.State{q0, q1}, dfa.States())
	assert.Equal(t, domain.Accepted(lonely), dfa.Evaluate("aaa"))
}
