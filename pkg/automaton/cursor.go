package automaton

import (
	"iter"

	"github.com/aretw0/automata/pkg/domain"
)

// Cursor tracks a position inside one automaton.
type Cursor struct {
	dfa     *DFA
	current domain.State
}

// Current returns the state the cursor is in.
func (c *Cursor) Current() domain.State {
	return c.current
}

// Step consumes a single symbol.
func (c *Cursor) Step(via domain.Symbol) *Cursor {
	c.current = c.dfa.Move(c.current, via)
	return c
}

// Classify reports whether the current state is accepting.
func (c *Cursor) Classify() domain.Evaluation {
	if c.dfa.IsAccept(c.current) {
		return domain.Accepted(c.current)
	}
	return domain.Rejected(c.current)
}

// Run consumes every symbol of input in order and classifies the final state.
// The cursor should not be reused afterwards.
func (c *Cursor) Run(input iter.Seq[domain.Symbol]) domain.Evaluation {
	for via := range input {
		c.Step(via)
	}
	return c.Classify()
}
