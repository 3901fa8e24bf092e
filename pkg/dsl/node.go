package dsl

import (
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

type edge struct {
	via domain.Symbol
	to  string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	label   string
	edges   []edge
	accept  bool
	builder *Builder
}

// On adds a transition to target for every symbol in symbols.
// A later transition on the same symbol replaces the earlier one.
func (s *StateBuilder) On(symbols string, target string) *StateBuilder {
	for _, r := range symbols {
		s.edges = append(s.edges, edge{via: domain.Symbol(r), to: target})
	}
	s.builder.State(target)
	return s
}

// Loop adds a transition back to this state for every symbol in symbols.
func (s *StateBuilder) Loop(symbols string) *StateBuilder {
	return s.On(symbols, s.label)
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// Start makes this the start state, replacing any previous one.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.start = s.label
	s.builder.hasStart = true
	return s
}

// State switches to another state, so a whole automaton can be declared in one chain.
func (s *StateBuilder) State(label string) *StateBuilder {
	return s.builder.State(label)
}

// Build builds the automaton the state belongs to.
func (s *StateBuilder) Build() (*automaton.DFA, error) {
	return s.builder.Build()
}
