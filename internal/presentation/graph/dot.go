package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
)

// GenerateDOT produces a Graphviz digraph of the automaton.
// Accepting states are drawn as double circles and the start state gets an entry arrow.
func GenerateDOT(dfa *automaton.DFA) string {
	var sb strings.Builder
	sb.WriteString("digraph dfa {\n")
	sb.WriteString("    rankdir=LR;\n")

	accepting := dfa.Accepting()
	if len(accepting) > 0 {
		sb.WriteString("    node [shape = doublecircle];")
		for _, s := range accepting {
			sb.WriteString(" " + strconv.Quote(s.Label) + ";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    node [shape = circle];\n")

	sb.WriteString("    __start [shape = point];\n")
	sb.WriteString(fmt.Sprintf("    __start -> %s;\n", strconv.Quote(dfa.Start().Label)))

	for _, e := range Edges(dfa) {
		sb.WriteString(fmt.Sprintf("    %s -> %s [label = %s];\n",
			strconv.Quote(e.From), strconv.Quote(e.To), strconv.Quote(e.Label())))
	}

	sb.WriteString("}\n")
	return sb.String()
}
