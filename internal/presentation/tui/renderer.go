package tui

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}

// Inspection is everything the inspect command reports about one automaton.
type Inspection struct {
	Name      string
	DFA       *automaton.DFA
	Partition [][]domain.State
	Strategy  automaton.Strategy
	Issues    []validator.Issue
}

// Markdown lays out an inspection as a markdown document.
func (in Inspection) Markdown() string {
	var sb strings.Builder
	d := in.DFA

	fmt.Fprintf(&sb, "# %s\n\n", cmp.Or(in.Name, "automaton"))

	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Start | `%s` |\n", d.Start())
	fmt.Fprintf(&sb, "| Accepting | %s |\n", codeList(labels(d.Accepting())))
	fmt.Fprintf(&sb, "| States | %d |\n", d.Len())
	fmt.Fprintf(&sb, "| Alphabet | %s |\n", codeList(symbols(d.Alphabet())))
	fmt.Fprintf(&sb, "| Transitions | %d |\n\n", len(d.Transitions()))

	sb.WriteString("## Transitions\n\n")
	sb.WriteString("| From | On | To |\n|---|---|---|\n")
	for _, e := range graph.Edges(d) {
		fmt.Fprintf(&sb, "| `%s` | %s | `%s` |\n", e.From, codeList(symbols(e.Symbols)), e.To)
	}
	sb.WriteString("\n")

	if in.Partition != nil {
		fmt.Fprintf(&sb, "## Equivalence classes (%s)\n\n", in.Strategy)
		for _, g := range in.Partition {
			fmt.Fprintf(&sb, "- %s\n", codeList(labels(g)))
		}
		if len(in.Partition) <= 2 {
			sb.WriteString("\nAlready minimal.\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Issues\n\n")
	if len(in.Issues) == 0 {
		sb.WriteString("None.\n")
	}
	for _, issue := range in.Issues {
		fmt.Fprintf(&sb, "- **%s** %s\n", issue.Severity, issue.Message)
	}

	return sb.String()
}

func labels(states []domain.State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.Label)
	}
	return out
}

func symbols(alphabet []domain.Symbol) []string {
	out := make([]string, 0, len(alphabet))
	for _, s := range alphabet {
		out = append(out, s.String())
	}
	return out
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}
