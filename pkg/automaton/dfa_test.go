package automaton_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDFA_Evaluate(t *testing.T) {
	dfa := parity(t)
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")

	tests := []struct {
		input string
		want  domain.Evaluation
	}{
		{"", domain.Rejected(q0)},
		{"010", domain.Rejected(q0)},
		{"001", domain.Rejected(q0)},
		{"011", domain.Accepted(q1)},
		{"01", domain.Accepted(q1)},
		{"1110", domain.Accepted(q1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := dfa.Evaluate(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.IsAccept(), got.IsAccept())
		})
	}

	assert.Equal(t, []domain.State{q0, q1}, dfa.States())
	assert.Equal(t, []domain.Symbol{'0', '1'}, dfa.Alphabet())
}

func TestDFA_MoveSelfLoopsOnMiss(t *testing.T) {
	dfa := parity(t)
	q0 := domain.NewState("q0")
	ghost := domain.NewState("ghost")

	assert.Equal(t, q0, dfa.Move(q0, 'x'))
	assert.Equal(t, ghost, dfa.Move(ghost, '0'))

	_, ok := dfa.Lookup(q0, 'x')
	assert.False(t, ok, "Lookup distinguishes a missing entry from a self-loop")
	to, ok := dfa.Lookup(q0, '1')
	assert.True(t, ok)
	assert.Equal(t, q0, to)

	assert.Equal(t, domain.Rejected(q0), dfa.Evaluate("xyz"))
}

func TestDFA_MoveIsStable(t *testing.T) {
	dfa := sixStates(t)
	for _, s := range dfa.States() {
		for _, via := range dfa.Alphabet() {
			first := dfa.Move(s, via)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, dfa.Move(s, via))
			}
		}
	}
}

func TestDFA_Transitions(t *testing.T) {
	dfa := parity(t)
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")

	want := []domain.Transition{
		{From: q0, Via: '0', To: q1},
		{From: q0, Via: '1', To: q0},
		{From: q1, Via: '0', To: q0},
		{From: q1, Via: '1', To: q1},
	}
	assert.Equal(t, want, dfa.Transitions())
}

func TestDFA_CloneAndEqual(t *testing.T) {
	dfa := parity(t)
	clone := dfa.Clone()

	assert.True(t, dfa.Equal(clone))
	assert.True(t, clone.Equal(dfa))
	assert.False(t, dfa.Equal(twoAs(t)))
	assert.False(t, dfa.Equal(nil))
}

func TestCursor_StepMatchesRun(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	alphabet := []domain.Symbol{'a', 'b', 'c'}

	for i := 0; i < 100; i++ {
		dfa := randomDFA(rng, alphabet)
		for _, w := range words(alphabet, 4) {
			cursor := dfa.Cursor()
			for _, r := range w {
				cursor.Step(domain.Symbol(r))
			}
			assert.Equal(t, dfa.Evaluate(w), cursor.Classify(), "input %q", w)
		}
	}
}

func TestCursor_Chaining(t *testing.T) {
	dfa := parity(t)

	cursor := dfa.Cursor().Step('0').Step('1')
	assert.Equal(t, domain.NewState("q1"), cursor.Current())

	got := cursor.Run(domain.Symbols("0"))
	assert.Equal(t, domain.Rejected(domain.NewState("q0")), got)
}

// randomDFA builds an automaton over labels s0..sN with random, partially defined transitions.
func randomDFA(rng *rand.Rand, alphabet []domain.Symbol) *automaton.DFA {
	n := 1 + rng.IntN(7)
	states := make([]domain.State, n)
	for i := range states {
		states[i] = domain.NewState("s" + string(rune('0'+i)))
	}

	b := automaton.NewBuilder().Start(states[rng.IntN(n)])
	for _, s := range states {
		for _, via := range alphabet {
			if rng.Float64() < 0.7 {
				b.Transition(s, via, states[rng.IntN(n)])
			}
		}
		if rng.Float64() < 0.4 {
			b.Accept(s)
		}
	}

	dfa, err := b.Build()
	if err != nil {
		panic(err)
	}
	return dfa
}

func TestRandomDFA_Deterministic(t *testing.T) {
	alphabet := []domain.Symbol{'a', 'b'}
	a := randomDFA(rand.New(rand.NewPCG(1, 2)), alphabet)
	b := randomDFA(rand.New(rand.NewPCG(1, 2)), alphabet)
	assert.True(t, a.Equal(b))
	assert.True(t, slices.Equal(a.States(), b.States()))
}
