package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// GraphOverlay contains an evaluation trace to visualize on the graph.
type GraphOverlay struct {
	Visited []domain.State
	Current domain.State
	Verdict *domain.Verdict
}

// NewOverlay builds an overlay from the states an evaluation passed through.
func NewOverlay(trace []domain.State, eval domain.Evaluation) *GraphOverlay {
	verdict := eval.Verdict
	return &GraphOverlay{
		Visited: trace,
		Current: eval.State,
		Verdict: &verdict,
	}
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Accepting: (((Double circle)))
// - Start: ((Circle)) with an entry arrow
// - Default: ([Stadium])
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(dfa *automaton.DFA, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := dfa.States()
	start := dfa.Start()
	if !slices.Contains(states, start) {
		// Orphan start states are still drawn so the entry arrow has a target.
		states = append(states, start)
	}

	ids := nodeIDs(states)

	for _, s := range states {
		safeID := ids.of(s)

		opener, closer := "([", "])"
		switch {
		case dfa.IsAccept(s):
			opener, closer = "(((", ")))"
		case s == start:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(s.Label), closer))
	}

	sb.WriteString(fmt.Sprintf("    __start(( )) --> %s\n", ids.of(start)))

	for _, e := range Edges(dfa) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			ids.of(domain.NewState(e.From)), escapeLabel(e.Label()), ids.of(domain.NewState(e.To))))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef accepted fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, s := range overlay.Visited {
			safeID := ids.of(s)
			if !seen[safeID] && s != overlay.Current {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.Current.Label != "" {
			class := "visited"
			if overlay.Verdict != nil {
				switch *overlay.Verdict {
				case domain.Accept:
					class = "accepted"
				case domain.Reject:
					class = "rejected"
				}
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", ids.of(overlay.Current), class))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}

// idMap assigns each state a positional node ID (s0, s1, ...). Labels only appear as text.
type idMap map[domain.State]string

func nodeIDs(states []domain.State) idMap {
	ids := make(idMap, len(states))
	for i, s := range states {
		ids[s] = fmt.Sprintf("s%d", i)
	}
	return ids
}

func (m idMap) of(s domain.State) string {
	id, ok := m[s]
	if !ok {
		id = fmt.Sprintf("s%d", len(m))
		m[s] = id
	}
	return id
}
