package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <definition> [input...]",
	Short: "Evaluate inputs against an automaton",
	Long: `Classifies every input given as an argument, or every line read from stdin when there are none.
With --interactive, each line is fed to the same cursor so an input can be typed in pieces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		showTrace, _ := cmd.Flags().GetBool("trace")
		minimize, _ := cmd.Flags().GetBool("minimize")

		logger := loggerFor(cmd)
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		def, dfa, err := cli.LoadAutomaton(args[0])
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
		if minimize {
			m, err := engine.Minimize(ctx, def.Name)
			if err != nil {
				return err
			}
			if err := engine.Register(ctx, m.Definition); err != nil {
				return err
			}
			dfa = m.Automaton
		}

		printer := tui.NewPrinter(out)

		if interactive {
			stdin := cmd.InOrStdin()
			prompt := false
			if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				prompt = true
				tui.PrintBanner(out, automata.Version)
				cli.PrintSystemMessage(out, "Type symbols, ':reset' to restart, ':quit' to exit.")
			}
			session := &cli.Session{DFA: dfa, In: stdin, Out: out, Printer: printer, Prompt: prompt}
			_, err := session.Run(ctx)
			return err
		}

		inputs := args[1:]
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				inputs = append(inputs, strings.TrimRight(scanner.Text(), "\r"))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading inputs: %w", err)
			}
		}

		for _, input := range inputs {
			res, err := engine.Evaluate(ctx, def.Name, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%q -> %s\n", input, printer.Verdict(res.Evaluation))
			if showTrace {
				labels := make([]string, len(res.Trace))
				for i, s := range res.Trace {
					labels[i] = s.Label
				}
				fmt.Fprintf(out, "    %s\n", strings.Join(labels, " -> "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("interactive", "i", false, "Read symbols line by line and keep the cursor between lines")
	runCmd.Flags().BoolP("trace", "t", false, "Print the states visited by each input")
	runCmd.Flags().BoolP("minimize", "m", false, "Minimize the automaton before evaluating")
}
