package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/spf13/cobra"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <definition>",
	Short: "Collapse equivalent states",
	Long:  `Minimizes the automaton and writes the result as a YAML definition.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		report, _ := cmd.Flags().GetBool("report")

		logger := loggerFor(cmd)
		ctx := cmd.Context()

		def, _, err := cli.LoadAutomaton(args[0])
		if err != nil {
			return err
		}

		engineOpts, err := engineOptionsFor(cmd)
		if err != nil {
			return err
		}
		engine, closeEngine, err := cli.NewEngine(ctx, engineOpts, logger)
		if err != nil {
			return err
		}
		defer closeEngine()

		if err := engine.Register(ctx, def); err != nil {
			return err
		}
		m, err := engine.Minimize(ctx, def.Name)
		if err != nil {
			return err
		}
		m.Definition.Description = def.Description

		if report {
			groups := make([]string, len(m.Report.Groups))
			for i, g := range m.Report.Groups {
				groups[i] = "{" + joinLabels(g, ",") + "}"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "strategy: %s, groups: %s, splits: %d, rounds: %d\n",
				m.Report.Strategy, strings.Join(groups, " "), m.Report.Splits, m.Report.Rounds)
			if m.Report.ShortCircuit {
				fmt.Fprintln(cmd.ErrOrStderr(), "already minimal")
			}
		}

		data, err := m.Definition.Marshal()
		if err != nil {
			return fmt.Errorf("error encoding definition: %w", err)
		}
		if output != "" {
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("error writing %s: %w", output, err)
			}
			return nil
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(minimizeCmd)

	minimizeCmd.Flags().StringP("output", "o", "", "Write the minimized definition to a file instead of stdout")
	minimizeCmd.Flags().Bool("report", false, "Print the equivalence classes to stderr")
}

func joinLabels(states []domain.State, sep string) string {
	labels := make([]string, len(states))
	for i, s := range states {
		labels[i] = s.Label
	}
	return strings.Join(labels, sep)
}
