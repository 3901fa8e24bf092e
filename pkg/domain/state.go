package domain

import (
	"iter"
	"strconv"
)

// State is an immutable automaton state. Two states with the same label are the same state.
type State struct {
	Label string `json:"label" yaml:"label"`
}

// NewState creates a state with the given label.
func NewState(label string) State {
	return State{Label: label}
}

// States creates one state per label, in order.
func States(labels ...string) []State {
	states := make([]State, len(labels))
	for i, label := range labels {
		states[i] = NewState(label)
	}
	return states
}

func (s State) String() string {
	return s.Label
}

// Symbol is a single unit of input consumed by one transition.
type Symbol rune

func (s Symbol) String() string {
	return string(rune(s))
}

// Quote returns the symbol as a Go-quoted character literal, e.g. '0'.
func (s Symbol) Quote() string {
	return strconv.QuoteRune(rune(s))
}

// Symbols yields every rune of input as a Symbol, in order.
func Symbols(input string) iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, r := range input {
			if !yield(Symbol(r)) {
				return
			}
		}
	}
}
