package automata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/definition"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Engine is the high-level entry point for the automata library.
// It keeps named definitions in a DefinitionStore and evaluates or minimizes them on demand.
// Safe for concurrent use as long as the store is.
type Engine struct {
	store    ports.DefinitionStore
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	strategy automaton.Strategy
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore sets where definitions are kept (default: in memory).
func WithStore(store ports.DefinitionStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks in order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrategy sets the default minimization strategy.
func WithStrategy(s automaton.Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.DiscardHandler)
	}
	return eng
}

// Result is the outcome of evaluating one input.
type Result struct {
	Evaluation domain.Evaluation `json:"evaluation"`
	// Trace lists the start state followed by the state reached after each symbol.
	Trace []domain.State `json:"trace"`
}

// Minimization is the outcome of minimizing a stored automaton.
type Minimization struct {
	Automaton  *automaton.DFA
	Definition *definition.Definition
	Report     automaton.Report
}

// Register compiles def and stores it under def.Name.
// An existing definition with the same name is replaced.
func (e *Engine) Register(ctx context.Context, def *definition.Definition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidDefinition)
	}
	if _, err := def.Compile(); err != nil {
		return err
	}
	if err := e.store.Save(ctx, def.Name, def); err != nil {
		return fmt.Errorf("failed to save automaton %q: %w", def.Name, err)
	}
	e.logger.Info("automaton registered", "automaton", def.Name, "transitions", len(def.Transitions))
	return nil
}

// Definition returns the stored definition.
func (e *Engine) Definition(ctx context.Context, name string) (*definition.Definition, error) {
	def, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton %q: %w", name, err)
	}
	return def, nil
}

// Automaton compiles the stored definition.
func (e *Engine) Automaton(ctx context.Context, name string) (*automaton.DFA, error) {
	def, err := e.Definition(ctx, name)
	if err != nil {
		return nil, err
	}
	dfa, err := def.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile automaton %q: %w", name, err)
	}
	return dfa, nil
}

// List returns the names of all stored automata.
func (e *Engine) List(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// Remove deletes a stored automaton.
// Returns domain.ErrAutomatonNotFound if there is nothing to delete.
func (e *Engine) Remove(ctx context.Context, name string) error {
	if _, err := e.Definition(ctx, name); err != nil {
		return err
	}
	if err := e.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete automaton %q: %w", name, err)
	}
	e.logger.Info("automaton removed", "automaton", name)
	return nil
}

// Evaluate runs input through the named automaton.
// Cancellation is checked between symbols.
func (e *Engine) Evaluate(ctx context.Context, name string, input string) (*Result, error) {
	dfa, err := e.Automaton(ctx, name)
	if err != nil {
		return nil, err
	}

	res, err := Trace(ctx, dfa, input)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("input evaluated",
		"automaton", name,
		"symbols", len(res.Trace)-1,
		"verdict", res.Evaluation.Verdict,
		"state", res.Evaluation.State,
	)

	if e.hooks.OnEvaluate != nil {
		e.hooks.OnEvaluate(ctx, &domain.EvaluationEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventEvaluate,
				Automaton: name,
			},
			Input:      input,
			Symbols:    len(res.Trace) - 1,
			Evaluation: res.Evaluation,
		})
	}
	return res, nil
}

// Trace evaluates input on dfa step by step, recording every visited state.
func Trace(ctx context.Context, dfa *automaton.DFA, input string) (*Result, error) {
	cursor := dfa.Cursor()
	trace := []domain.State{cursor.Current()}
	for via := range domain.Symbols(input) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		trace = append(trace, cursor.Step(via).Current())
	}
	return &Result{
		Evaluation: cursor.Classify(),
		Trace:      trace,
	}, nil
}

// Minimize collapses the named automaton with the engine strategy, unless opts override it.
// The stored definition is left untouched.
func (e *Engine) Minimize(ctx context.Context, name string, opts ...automaton.Option) (*Minimization, error) {
	dfa, err := e.Automaton(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := append([]automaton.Option{
		automaton.WithStrategy(e.strategy),
		automaton.WithLogger(e.logger.With("automaton", name)),
	}, opts...)

	started := time.Now()
	minimized, report := automaton.MinimizeWithReport(dfa, all...)
	elapsed := time.Since(started)

	e.logger.Info("automaton minimized",
		"automaton", name,
		"strategy", report.Strategy,
		"states_before", dfa.Len(),
		"states_after", minimized.Len(),
		"duration", elapsed,
	)

	if e.hooks.OnMinimize != nil {
		e.hooks.OnMinimize(ctx, &domain.MinimizeEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventMinimize,
				Automaton: name,
			},
			Strategy:     report.Strategy.String(),
			StatesBefore: dfa.Len(),
			StatesAfter:  minimized.Len(),
			Splits:       report.Splits,
			ShortCircuit: report.ShortCircuit,
			Duration:     elapsed,
		})
	}

	def := definition.FromDFA(name, minimized)
	return &Minimization{
		Automaton:  minimized,
		Definition: def,
		Report:     report,
	}, nil
}
