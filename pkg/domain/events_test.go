package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string

	first := LifecycleHooks{
		OnEvaluate: func(context.Context, *EvaluationEvent) { calls = append(calls, "first") },
	}
	second := LifecycleHooks{
		OnEvaluate: func(context.Context, *EvaluationEvent) { calls = append(calls, "second") },
		OnMinimize: func(context.Context, *MinimizeEvent) { calls = append(calls, "minimize") },
	}

	merged := first.Merge(second)
	merged.OnEvaluate(context.Background(), &EvaluationEvent{})
	merged.OnMinimize(context.Background(), &MinimizeEvent{})

	assert.Equal(t, []string{"first", "second", "minimize"}, calls)
	assert.Nil(t, LifecycleHooks{}.Merge(LifecycleHooks{}).OnEvaluate)
}
