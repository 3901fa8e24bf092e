package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Check the automaton for consistency",
	Long: `Crawls the automaton from its start state and reports orphan or unreachable states.
With --strict, states that rely on the implicit self-loop for part of the alphabet are errors too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		out := cmd.OutOrStdout()

		_, dfa, err := cli.LoadAutomaton(args[0])
		if err != nil {
			return err
		}

		if err := validator.Validate(dfa, strict); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		if !strict {
			for _, issue := range validator.Inspect(dfa) {
				if issue.Severity == validator.SeverityInfo {
					fmt.Fprintln(out, issue)
				}
			}
		}
		fmt.Fprintln(out, "Automaton is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Treat implicit self-loops as errors")
}
