package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/definition"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractDefinition(name string) *definition.Definition {
	return &definition.Definition{
		Name:   name,
		Start:  "even",
		Accept: []string{"even"},
		Transitions: []definition.Transition{
			{From: "even", On: "0", To: "odd"},
			{From: "odd", On: "0", To: "even"},
		},
	}
}

// RunDefinitionStoreContract runs a suite of tests to verify that a DefinitionStore implementation
// adheres to the defined interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		def := contractDefinition(name)

		err := store.Save(ctx, name, def)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, def, loaded)

		dfa, err := loaded.Compile()
		require.NoError(t, err)
		assert.True(t, dfa.Evaluate("00").IsAccept())
	})

	t.Run("Save Replaces", func(t *testing.T) {
		def := contractDefinition(name)
		def.Accept = []string{"odd"}
		require.NoError(t, store.Save(ctx, name, def))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, []string{"odd"}, loaded.Accept)
	})

	t.Run("Isolation", func(t *testing.T) {
		def := contractDefinition(name)
		require.NoError(t, store.Save(ctx, name, def))

		// Mutating the caller's copy must not leak into the store.
		def.Transitions[0].To = "elsewhere"
		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "odd", loaded.Transitions[0].To)

		loaded.Accept[0] = "changed"
		again, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, []string{"even"}, again.Accept)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, contractDefinition(name)))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound, "Load after Delete should return ErrAutomatonNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-b"
		id2 := name + "-a"
		require.NoError(t, store.Save(ctx, id1, contractDefinition(id1)))
		require.NoError(t, store.Save(ctx, id2, contractDefinition(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsIncreasing(t, names)
	})
}
