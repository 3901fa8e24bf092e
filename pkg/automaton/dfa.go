package automaton

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

type key struct {
	from domain.State
	via  domain.Symbol
}

// DFA is an immutable deterministic finite automaton. It is safe for concurrent use.
type DFA struct {
	transitions map[key]domain.State
	start       domain.State
	accept      map[domain.State]struct{}
}

// Start returns the start state.
func (d *DFA) Start() domain.State {
	return d.start
}

// Move returns the successor of from under via, or from itself when no transition is defined.
func (d *DFA) Move(from domain.State, via domain.Symbol) domain.State {
	if to, ok := d.transitions[key{from: from, via: via}]; ok {
		return to
	}
	return from
}

// Lookup returns the explicit successor of from under via, if one is defined.
func (d *DFA) Lookup(from domain.State, via domain.Symbol) (domain.State, bool) {
	to, ok := d.transitions[key{from: from, via: via}]
	return to, ok
}

// IsAccept reports whether s is an accepting state.
func (d *DFA) IsAccept(s domain.State) bool {
	_, ok := d.accept[s]
	return ok
}

// States returns every state that is the source or target of a transition, sorted by label.
// States without any transition are not included, even when they are the start or accepting.
func (d *DFA) States() []domain.State {
	seen := make(map[domain.State]struct{}, len(d.transitions))
	for k, to := range d.transitions {
		seen[k.from] = struct{}{}
		seen[to] = struct{}{}
	}
	return sortStates(maps.Keys(seen))
}

// Len returns the number of states, as counted by States.
func (d *DFA) Len() int {
	return len(d.States())
}

// Accepting returns the accepting states sorted by label.
func (d *DFA) Accepting() []domain.State {
	return sortStates(maps.Keys(d.accept))
}

// Transitions returns the transition table as triples sorted by source label, then symbol.
func (d *DFA) Transitions() []domain.Transition {
	out := make([]domain.Transition, 0, len(d.transitions))
	for k, to := range d.transitions {
		out = append(out, domain.Transition{From: k.from, Via: k.via, To: to})
	}
	slices.SortFunc(out, func(a, b domain.Transition) int {
		if c := strings.Compare(a.From.Label, b.From.Label); c != 0 {
			return c
		}
		return cmp.Compare(a.Via, b.Via)
	})
	return out
}

// Alphabet returns every symbol used by a transition, sorted.
func (d *DFA) Alphabet() []domain.Symbol {
	seen := make(map[domain.Symbol]struct{})
	for k := range d.transitions {
		seen[k.via] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Cursor returns a cursor positioned at the start state.
func (d *DFA) Cursor() *Cursor {
	return &Cursor{dfa: d, current: d.start}
}

// Evaluate runs input from the start state and classifies the final state.
func (d *DFA) Evaluate(input string) domain.Evaluation {
	return d.Cursor().Run(domain.Symbols(input))
}

// Clone returns a copy of the automaton that shares no maps with d.
func (d *DFA) Clone() *DFA {
	return &DFA{
		transitions: maps.Clone(d.transitions),
		start:       d.start,
		accept:      maps.Clone(d.accept),
	}
}

// Equal reports whether both automata have the same transitions, start and accept states.
func (d *DFA) Equal(other *DFA) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.start == other.start &&
		maps.Equal(d.transitions, other.transitions) &&
		maps.Equal(d.accept, other.accept)
}

func sortStates(seq iter.Seq[domain.State]) []domain.State {
	return slices.SortedFunc(seq, compareStates)
}

func compareStates(a, b domain.State) int {
	return strings.Compare(a.Label, b.Label)
}
