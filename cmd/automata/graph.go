package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	format   string
	input    string
	overlay  bool
	minimize bool
	strategy automaton.Strategy
}

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <definition>",
	Short: "Export the automaton as a diagram",
	Long: `Outputs a Mermaid flowchart (default) or a Graphviz digraph of the automaton.
With --input, the Mermaid output highlights the states the input visits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		strategy, err := strategyFor(cmd)
		if err != nil {
			return err
		}
		opts := graphOptions{strategy: strategy}
		opts.format, _ = cmd.Flags().GetString("format")
		opts.minimize, _ = cmd.Flags().GetBool("minimize")
		opts.input, _ = cmd.Flags().GetString("input")
		opts.overlay = cmd.Flags().Changed("input")

		if opts.format != "mermaid" && opts.format != "dot" {
			return fmt.Errorf("unknown graph format %q", opts.format)
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		path := args[0]

		if !watch {
			return renderGraph(ctx, out, path, opts)
		}

		logger := loggerFor(cmd)
		return cli.WatchFile(ctx, path, cli.DefaultDebounce, logger, func() {
			if err := renderGraph(ctx, out, path, opts); err != nil {
				cli.PrintSystemMessage(out, "Error: %v", err)
			}
			cli.PrintSystemMessage(out, "Waiting for changes to '%s'...", path)
		})
	},
}

func renderGraph(ctx context.Context, w io.Writer, path string, opts graphOptions) error {
	_, dfa, err := cli.LoadAutomaton(path)
	if err != nil {
		return err
	}
	if opts.minimize {
		dfa = automaton.Minimize(dfa, automaton.WithStrategy(opts.strategy))
	}

	switch opts.format {
	case "dot":
		_, err = io.WriteString(w, graph.GenerateDOT(dfa))
	default:
		var overlay *graph.GraphOverlay
		if opts.overlay {
			res, err := automata.Trace(ctx, dfa, opts.input)
			if err != nil {
				return err
			}
			overlay = graph.NewOverlay(res.Trace, res.Evaluation)
		}
		_, err = io.WriteString(w, graph.GenerateMermaid(dfa, overlay))
	}
	return err
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("format", "f", "mermaid", `Output format: "mermaid" or "dot"`)
	graphCmd.Flags().String("input", "", "Highlight the path of this input (Mermaid only)")
	graphCmd.Flags().BoolP("minimize", "m", false, "Minimize before rendering")
	graphCmd.Flags().BoolP("watch", "w", false, "Re-render whenever the definition file changes")
}
