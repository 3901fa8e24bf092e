package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Session feeds input lines to one cursor, so an input can be typed in pieces.
// ":reset" returns to the start state and ":quit" ends the session.
type Session struct {
	DFA     *automaton.DFA
	In      io.Reader
	Out     io.Writer
	Printer *tui.Printer
	// Prompt enables the "[state] > " prompt, for terminals.
	Prompt bool
}

// Run reads lines until EOF, ":quit" or cancellation and returns the final classification.
func (s *Session) Run(ctx context.Context) (domain.Evaluation, error) {
	cursor := s.DFA.Cursor()
	scanner := bufio.NewScanner(s.In)

	for {
		if err := ctx.Err(); err != nil {
			return cursor.Classify(), err
		}
		if s.Prompt {
			fmt.Fprintf(s.Out, "%s > ", s.Printer.State(cursor.Current()))
		}
		if !scanner.Scan() {
			return cursor.Classify(), scanner.Err()
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		switch strings.TrimSpace(line) {
		case ":quit", ":q":
			return cursor.Classify(), nil
		case ":reset":
			cursor = s.DFA.Cursor()
			PrintSystemMessage(s.Out, "Back at '%s'.", cursor.Current())
			continue
		}

		for via := range domain.Symbols(line) {
			cursor.Step(via)
		}
		fmt.Fprintln(s.Out, s.Printer.Verdict(cursor.Classify()))
	}
}
