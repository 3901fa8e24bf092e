package tui

import (
	"io"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
)

// Printer colors evaluation results for a terminal.
type Printer struct {
	out *termenv.Output
}

// NewPrinter detects the color profile of w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: termenv.NewOutput(w)}
}

// NewPlainPrinter never emits escape sequences.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Verdict renders "ACCEPT (state)" in green or "REJECT (state)" in red.
func (p *Printer) Verdict(eval domain.Evaluation) string {
	word, color := "REJECT", "#ef4444"
	if eval.IsAccept() {
		word, color = "ACCEPT", "#22c55e"
	}
	head := p.out.String(word).Foreground(p.out.Color(color)).Bold().String()
	return head + " (" + p.out.String(eval.State.Label).Italic().String() + ")"
}

// State renders a state label as the interactive prompt shows it.
func (p *Printer) State(s domain.State) string {
	return p.out.String("[" + s.Label + "]").Foreground(p.out.Color("#a78bfa")).String()
}
