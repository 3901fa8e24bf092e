package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/definition"
	"github.com/aretw0/automata/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	once   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Unlike signal.NotifyContext it remembers which signal arrived.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.once.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// NewLogger configures the application logger.
// Without --debug only warnings and errors are written.
func NewLogger(debug, jsonLogs bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug, jsonLogs)
	}
	return logging.New(slog.LevelWarn, jsonLogs)
}

// PrintSystemMessage prints a standardized system message.
func PrintSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// LoadAutomaton reads a definition file and compiles it.
// A definition without a name is named after the file.
func LoadAutomaton(path string) (*definition.Definition, *automaton.DFA, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	dfa, err := def.Compile()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, dfa, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.EvaluationEvent) {
			logger.Debug("Evaluate", "automaton", e.Automaton, "symbols", e.Symbols, "result", e.Evaluation)
		},
		OnMinimize: func(ctx context.Context, e *domain.MinimizeEvent) {
			logger.Debug("Minimize",
				"automaton", e.Automaton,
				"strategy", e.Strategy,
				"states_before", e.StatesBefore,
				"states_after", e.StatesAfter,
				"splits", e.Splits,
			)
		},
	}
}
