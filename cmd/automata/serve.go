package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/automata/internal/cli"
	httpAdapter "github.com/aretw0/automata/pkg/adapters/http"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [definition...]",
	Short: "Start the HTTP server",
	Long: `Exposes a JSON API to register, evaluate, minimize and render automata.
Definitions given as arguments are registered at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		logger := loggerFor(cmd)
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		engineOpts, err := engineOptionsFor(cmd)
		if err != nil {
			return err
		}
		engineOpts.RedisAddr, _ = cmd.Flags().GetString("redis")
		engineOpts.RedisPassword, _ = cmd.Flags().GetString("redis-password")
		engineOpts.RedisDB, _ = cmd.Flags().GetInt("redis-db")
		engineOpts.RedisPrefix, _ = cmd.Flags().GetString("redis-prefix")
		engineOpts.TTL, _ = cmd.Flags().GetDuration("ttl")
		engineOpts.StoreDir, _ = cmd.Flags().GetString("store-dir")

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		engineOpts.Hooks = observability.NewMetrics(reg).Hooks()

		engine, closeEngine, err := cli.NewEngine(ctx, engineOpts, logger)
		if err != nil {
			return err
		}
		defer closeEngine()

		for _, path := range args {
			def, _, err := cli.LoadAutomaton(path)
			if err != nil {
				return err
			}
			if err := engine.Register(ctx, def); err != nil {
				return err
			}
			cli.PrintSystemMessage(out, "Registered '%s' from %s", def.Name, path)
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           httpAdapter.NewHandler(engine, httpAdapter.WithLogger(logger), httpAdapter.WithGatherer(reg)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		cli.PrintSystemMessage(out, "Starting automata server on %s", srv.Addr)
		go func() {
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil

		case <-ctx.Done():
			cli.PrintSystemMessage(out, "Start shutdown...")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			cli.PrintSystemMessage(out, "Automata server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the definition store (in-memory when empty)")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database")
	serveCmd.Flags().String("redis-prefix", "", "Key prefix for stored definitions")
	serveCmd.Flags().String("store-dir", "", "Directory of YAML definitions to use as the store")
	serveCmd.Flags().Duration("ttl", 0, "Expire stored definitions after this long (0 keeps them)")
}
