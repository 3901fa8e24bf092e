package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// EngineOptions configures the engine built for a command.
type EngineOptions struct {
	Debug    bool
	Strategy automaton.Strategy
	Hooks    domain.LifecycleHooks

	// StoreDir selects the file store. RedisAddr takes precedence.
	// The in-memory store is used when both are empty.
	StoreDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	TTL           time.Duration
}

// NewEngine initializes an engine with standard CLI conventions.
// The returned close function releases the store.
func NewEngine(ctx context.Context, opts EngineOptions, logger *slog.Logger) (*automata.Engine, func() error, error) {
	engineOpts := []automata.Option{
		automata.WithLogger(logger),
		automata.WithStrategy(opts.Strategy),
		automata.WithLifecycleHooks(opts.Hooks),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, automata.WithLifecycleHooks(createDebugHooks(logger)))
	}

	closer := func() error { return nil }
	switch {
	case opts.RedisAddr != "":
		var storeOpts []redis.Option
		if opts.RedisPrefix != "" {
			storeOpts = append(storeOpts, redis.WithPrefix(opts.RedisPrefix))
		}
		if opts.TTL > 0 {
			storeOpts = append(storeOpts, redis.WithTTL(opts.TTL))
		}
		store := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, storeOpts...)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("error connecting to redis at %s: %w", opts.RedisAddr, err)
		}
		logger.Info("Using redis store", "addr", opts.RedisAddr)
		engineOpts = append(engineOpts, automata.WithStore(store))
		closer = store.Close
	case opts.StoreDir != "":
		logger.Info("Using file store", "dir", opts.StoreDir)
		engineOpts = append(engineOpts, automata.WithStore(file.New(opts.StoreDir)))
	}

	return automata.New(engineOpts...), closer, nil
}
