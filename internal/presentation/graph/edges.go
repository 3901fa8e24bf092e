package graph

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Edge is every transition between two states, with the symbols sorted.
type Edge struct {
	From    string
	To      string
	Symbols []domain.Symbol
}

// Label joins the edge symbols with commas.
func (e Edge) Label() string {
	parts := make([]string, len(e.Symbols))
	for i, s := range e.Symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// Edges groups parallel transitions by their endpoints.
func Edges(dfa *automaton.DFA) []Edge {
	type endpoints struct{ from, to string }
	grouped := make(map[endpoints][]domain.Symbol)
	for _, t := range dfa.Transitions() {
		k := endpoints{from: t.From.Label, to: t.To.Label}
		grouped[k] = append(grouped[k], t.Via)
	}

	edges := make([]Edge, 0, len(grouped))
	for k, symbols := range grouped {
		slices.Sort(symbols)
		edges = append(edges, Edge{From: k.from, To: k.to, Symbols: symbols})
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Or(strings.Compare(a.From, b.From), strings.Compare(a.To, b.To))
	})
	return edges
}
