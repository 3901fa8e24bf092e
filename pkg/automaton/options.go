package automaton

import (
	"fmt"
	"log/slog"
)

// Strategy selects how the minimizer decides that two states are indistinguishable.
type Strategy int

const (
	// ClosureStrategy compares states by the union of their successors over all symbols.
	// It is the default and may merge states that differ on an individual symbol.
	ClosureStrategy Strategy = iota

	// SymbolStrategy compares states by the group of their successor under every symbol
	// of the alphabet (Moore refinement). Merged automata always accept the same language.
	SymbolStrategy
)

func (s Strategy) String() string {
	switch s {
	case ClosureStrategy:
		return "closure"
	case SymbolStrategy:
		return "symbol"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses "closure" or "symbol".
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "closure":
		return ClosureStrategy, nil
	case "symbol":
		return SymbolStrategy, nil
	default:
		return 0, fmt.Errorf("unknown minimization strategy %q", name)
	}
}

type config struct {
	strategy Strategy
	logger   *slog.Logger
}

// Option configures minimization.
type Option func(*config)

// WithStrategy selects the equivalence strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithLogger sets the logger used for debug output of the refinement steps.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		strategy: ClosureStrategy,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
