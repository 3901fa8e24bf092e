package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/definition"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := setup(t)
	store := redis.NewFromClient(client)
	ports.RunDefinitionStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithPrefix("test:"))
	ctx := context.Background()

	def := &definition.Definition{Name: "parity", Start: "even", Accept: []string{"even"}}
	require.NoError(t, store.Save(ctx, "parity", def))

	assert.True(t, mr.Exists("test:parity"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"parity"))

	members, err := mr.ZMembers("test:index")
	require.NoError(t, err)
	assert.Equal(t, []string{"parity"}, members)
}

func TestRedisStore_TTL(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	def := &definition.Definition{Name: "short-lived", Start: "q0"}
	require.NoError(t, store.Save(ctx, "short-lived", def))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultPrefix+"short-lived"))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client)

	require.NoError(t, mr.Set(redis.DefaultPrefix+"broken", "{not json"))

	_, err := store.Load(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAutomatonNotFound)
	assert.Contains(t, err.Error(), "failed to unmarshal definition")
}
