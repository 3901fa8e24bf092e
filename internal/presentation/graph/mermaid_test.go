package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
)

func parity(t *testing.T) *automaton.DFA {
	t.Helper()
	dfa, err := dsl.New().
		State("even").Start().Accept().On("0", "odd").Loop("1").
		State("odd").On("0", "even").Loop("1").
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return dfa
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) *automaton.DFA
		overlay  func(dfa *automaton.DFA) *graph.GraphOverlay
		contains []string
	}{
		{
			name:  "State Shapes",
			build: parity,
			contains: []string{
				"s0(((\"even\")))",
				"s1([\"odd\"])",
				"__start(( )) --> s0",
			},
		},
		{
			name:  "Edge Labels",
			build: parity,
			contains: []string{
				`s0 -- "0" --> s1`,
				`s0 -- "1" --> s0`,
			},
		},
		{
			name: "Positional IDs",
			build: func(t *testing.T) *automaton.DFA {
				dfa, err := dsl.New().State("not-yet").Start().On("ab", "done.ok").Build()
				if err != nil {
					t.Fatalf("Build() failed: %v", err)
				}
				return dfa
			},
			contains: []string{
				"s1((\"not-yet\"))",
				`s1 -- "a,b" --> s0`,
			},
		},
		{
			name:  "Overlay",
			build: parity,
			overlay: func(dfa *automaton.DFA) *graph.GraphOverlay {
				trace := []domain.State{domain.NewState("even"), domain.NewState("odd")}
				return graph.NewOverlay(trace, dfa.Evaluate("0"))
			},
			contains: []string{
				"class s0 visited;",
				"class s1 rejected;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dfa := tt.build(t)
			var overlay *graph.GraphOverlay
			if tt.overlay != nil {
				overlay = tt.overlay(dfa)
			}
			got := graph.GenerateMermaid(dfa, overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaid_OrphanStart(t *testing.T) {
	dfa, err := dsl.New().State("a").On("x", "b").State("lonely").Start().Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	got := graph.GenerateMermaid(dfa, nil)
	if !strings.Contains(got, "s2((\"lonely\"))") {
		t.Errorf("orphan start state not drawn:\n%v", got)
	}
}

func TestGenerateMermaid_DistinctIDs(t *testing.T) {
	dfa, err := dsl.New().
		State("q-1").Start().On("a", "q_1").
		State("q_1").On("a", "end").
		State("end").Accept().
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	got := graph.GenerateMermaid(dfa, nil)
	for _, want := range []string{
		"s0(((\"end\")))",
		"s1((\"q-1\"))",
		"s2([\"q_1\"])",
		`s1 -- "a" --> s2`,
		`s2 -- "a" --> s0`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
}
