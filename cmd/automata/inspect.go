package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <definition>",
	Short: "Describe an automaton",
	Long:  `Prints a summary of the automaton: states, alphabet, transitions, equivalence classes and issues.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		strategy, err := strategyFor(cmd)
		if err != nil {
			return err
		}

		def, dfa, err := cli.LoadAutomaton(args[0])
		if err != nil {
			return err
		}

		md := tui.Inspection{
			Name:      def.Name,
			DFA:       dfa,
			Partition: automaton.Partition(dfa, automaton.WithStrategy(strategy), automaton.WithLogger(loggerFor(cmd))),
			Strategy:  strategy,
			Issues:    validator.Inspect(dfa),
		}.Markdown()

		if raw {
			_, err := fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		}

		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			return fmt.Errorf("error rendering markdown: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
}
