package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluate EventType = "evaluate"
	EventMinimize EventType = "minimize"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton,omitempty"`
}

// EvaluationEvent is emitted after an input has been classified.
type EvaluationEvent struct {
	EventBase
	Input      string     `json:"input"`
	Symbols    int        `json:"symbols"`
	Evaluation Evaluation `json:"evaluation"`
}

// MinimizeEvent is emitted after an automaton has been minimized.
type MinimizeEvent struct {
	EventBase
	Strategy     string        `json:"strategy"`
	StatesBefore int           `json:"states_before"`
	StatesAfter  int           `json:"states_after"`
	Splits       int           `json:"splits"`
	ShortCircuit bool          `json:"short_circuit"`
	Duration     time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnEvaluate func(context.Context, *EvaluationEvent)
	OnMinimize func(context.Context, *MinimizeEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnEvaluate: chain(h.OnEvaluate, other.OnEvaluate),
		OnMinimize: chain(h.OnMinimize, other.OnMinimize),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
