package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata builds, evaluates and minimizes deterministic finite automata",
	Long: `Automata loads DFA definitions from YAML or JSON files, classifies inputs,
collapses equivalent states and renders the result as Mermaid or Graphviz.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	sigCtx := cli.NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if err := rootCmd.ExecuteContext(sigCtx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		sigCtx.Cancel()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("strategy", "closure", `Minimization strategy: "closure" or "symbol"`)
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	return cli.NewLogger(debug, jsonLogs)
}

func strategyFor(cmd *cobra.Command) (automaton.Strategy, error) {
	name, _ := cmd.Flags().GetString("strategy")
	return automaton.ParseStrategy(name)
}

func engineOptionsFor(cmd *cobra.Command) (cli.EngineOptions, error) {
	strategy, err := strategyFor(cmd)
	if err != nil {
		return cli.EngineOptions{}, err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.EngineOptions{Debug: debug, Strategy: strategy}, nil
}
