package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/definition"
)

// DefinitionStore persists automaton definitions by name.
type DefinitionStore interface {
	// Save stores the definition under name, replacing any previous one.
	Save(ctx context.Context, name string, def *definition.Definition) error

	// Load retrieves the definition stored under name.
	// Returns domain.ErrAutomatonNotFound if there is none.
	Load(ctx context.Context, name string) (*definition.Definition, error)

	// Delete removes the definition. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
}
