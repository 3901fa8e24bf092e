package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Run(t *testing.T) {
	_, dfa, err := LoadAutomaton(writeDefinition(t, "parity.yaml", parityYAML))
	require.NoError(t, err)

	var out bytes.Buffer
	s := &Session{
		DFA:     dfa,
		In:      strings.NewReader("0\n0\n:reset\n01\n:quit\n0\n"),
		Out:     &out,
		Printer: tui.NewPlainPrinter(&out),
	}

	eval, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Rejected(domain.NewState("odd")), eval)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"REJECT (odd)",
		"ACCEPT (even)",
		">>> Back at 'even'.",
		"REJECT (odd)",
	}, lines)
}

func TestSession_Prompt(t *testing.T) {
	_, dfa, err := LoadAutomaton(writeDefinition(t, "parity.yaml", parityYAML))
	require.NoError(t, err)

	var out bytes.Buffer
	s := &Session{
		DFA:     dfa,
		In:      strings.NewReader("1\n"),
		Out:     &out,
		Printer: tui.NewPlainPrinter(&out),
		Prompt:  true,
	}

	eval, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, eval.IsAccept())
	assert.Equal(t, "[even] > ACCEPT (even)\n[even] > ", out.String())
}

func TestSession_Canceled(t *testing.T) {
	_, dfa, err := LoadAutomaton(writeDefinition(t, "parity.yaml", parityYAML))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := &Session{DFA: dfa, In: strings.NewReader("0\n"), Out: &out, Printer: tui.NewPlainPrinter(&out)}
	_, err = s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
