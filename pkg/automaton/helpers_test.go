package automaton_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/require"
)

// edge adds one transition per symbol in symbols.
func edge(b *automaton.Builder, from string, symbols string, to string) *automaton.Builder {
	for _, r := range symbols {
		b.Transition(domain.NewState(from), domain.Symbol(r), domain.NewState(to))
	}
	return b
}

func mustBuild(t *testing.T, b *automaton.Builder) *automaton.DFA {
	t.Helper()
	dfa, err := b.Build()
	require.NoError(t, err)
	return dfa
}

// parity accepts binary strings with an odd number of zeros.
func parity(t *testing.T) *automaton.DFA {
	b := automaton.NewBuilder().Start(domain.NewState("q0"))
	edge(b, "q0", "0", "q1")
	edge(b, "q0", "1", "q0")
	edge(b, "q1", "0", "q0")
	edge(b, "q1", "1", "q1")
	b.Accept(domain.NewState("q1"))
	return mustBuild(t, b)
}

// twoAs accepts strings over {a,b} containing at least two a's.
func twoAs(t *testing.T) *automaton.DFA {
	b := automaton.NewBuilder().Start(domain.NewState("q1"))
	edge(b, "q1", "b", "q2")
	edge(b, "q1", "a", "q3")
	edge(b, "q2", "b", "q2")
	edge(b, "q2", "a", "q4")
	edge(b, "q3", "b", "q4")
	edge(b, "q3", "a", "q5")
	edge(b, "q4", "b", "q4")
	edge(b, "q4", "a", "q5")
	b.Accept(domain.NewState("q5"))
	return mustBuild(t, b)
}

func sixStates(t *testing.T) *automaton.DFA {
	b := automaton.NewBuilder().Start(domain.NewState("q0"))
	edge(b, "q0", "0", "q1")
	edge(b, "q0", "1", "q3")
	edge(b, "q1", "0", "q4")
	edge(b, "q1", "1", "q2")
	edge(b, "q2", "0", "q4")
	edge(b, "q2", "1", "q5")
	edge(b, "q3", "0", "q1")
	edge(b, "q3", "1", "q3")
	edge(b, "q4", "0", "q3")
	edge(b, "q4", "1", "q4")
	edge(b, "q5", "0", "q4")
	edge(b, "q5", "1", "q5")
	b.Accept(domain.NewState("q0"), domain.NewState("q3"))
	return mustBuild(t, b)
}

// integers accepts decimal integers without leading zeros, optionally negative.
func integers(t *testing.T) *automaton.DFA {
	b := automaton.NewBuilder().Start(domain.NewState("start"))
	edge(b, "trap", "-0123456789", "trap")
	edge(b, "start", "-", "neg")
	edge(b, "start", "0", "zero")
	edge(b, "start", "123456789", "number")
	edge(b, "number", "0123456789", "number")
	edge(b, "number", "-", "trap")
	edge(b, "zero", "-123456789", "trap")
	edge(b, "neg", "-0", "trap")
	edge(b, "neg", "123456789", "number")
	b.Accept(domain.NewState("number"), domain.NewState("zero"))
	return mustBuild(t, b)
}

// words returns every string over alphabet with length <= n.
func words(alphabet []domain.Symbol, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range frontier {
			for _, s := range alphabet {
				next = append(next, w+string(rune(s)))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
