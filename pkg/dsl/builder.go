package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	states   map[string]*StateBuilder
	order    []string
	start    string
	hasStart bool
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// State declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(label string) *StateBuilder {
	if sb, ok := b.states[label]; ok {
		return sb
	}
	sb := &StateBuilder{
		label:   label,
		builder: b,
	}
	b.states[label] = sb
	b.order = append(b.order, label)
	return sb
}

// Build compiles the declared states into a DFA.
// The builder can be built again after further changes.
func (b *Builder) Build() (*automaton.DFA, error) {
	ab := automaton.NewBuilder()
	if b.hasStart {
		ab.Start(domain.NewState(b.start))
	}

	for _, label := range b.order {
		sb := b.states[label]
		from := domain.NewState(label)
		for _, e := range sb.edges {
			ab.Transition(from, e.via, domain.NewState(e.to))
		}
		if sb.accept {
			ab.Accept(from)
		}
	}

	dfa, err := ab.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return dfa, nil
}
