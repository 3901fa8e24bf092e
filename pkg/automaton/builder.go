package automaton

import (
	"errors"

	"github.com/aretw0/automata/pkg/domain"
)

// ErrBuilderConsumed is returned by Build when the builder has already produced an automaton.
var ErrBuilderConsumed = errors.New("builder already consumed")

// Builder accumulates transitions, accept states and a start state.
// It is single-use: once Build succeeds, further calls are ignored.
type Builder struct {
	transitions map[key]domain.State
	accept      map[domain.State]struct{}
	start       *domain.State
	consumed    bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		transitions: make(map[key]domain.State),
		accept:      make(map[domain.State]struct{}),
	}
}

// Transition maps (from, via) to to. A later call for the same pair overwrites it.
func (b *Builder) Transition(from domain.State, via domain.Symbol, to domain.State) *Builder {
	if b.consumed {
		return b
	}
	b.transitions[key{from: from, via: via}] = to
	return b
}

// Accept marks states as accepting.
func (b *Builder) Accept(states ...domain.State) *Builder {
	if b.consumed {
		return b
	}
	for _, s := range states {
		b.accept[s] = struct{}{}
	}
	return b
}

// Start sets the start state, replacing any previous one.
func (b *Builder) Start(s domain.State) *Builder {
	if b.consumed {
		return b
	}
	b.start = &s
	return b
}

// Build freezes the builder into a DFA.
// The start state is the only requirement; orphan start or accept states are kept as given.
func (b *Builder) Build() (*DFA, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if b.start == nil {
		return nil, domain.ErrNoStartState
	}
	return b.build(), nil
}

func (b *Builder) build() *DFA {
	b.consumed = true
	dfa := &DFA{
		transitions: b.transitions,
		start:       *b.start,
		accept:      b.accept,
	}
	b.transitions, b.accept, b.start = nil, nil, nil
	return dfa
}
