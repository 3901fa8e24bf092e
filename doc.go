/*
Package automata is a deterministic finite automaton (DFA) engine with state minimization.

The core lives in pkg/automaton: a single-use Builder produces an immutable DFA, a Cursor
walks it one symbol at a time, and Minimize collapses indistinguishable states into merged
states named after their members. Missing transitions are never errors: a state with no
entry for a symbol stays where it is.

This package wraps the core in an Engine that keeps named definitions in a store
(in memory or Redis) and exposes evaluation and minimization with lifecycle hooks,
which is what the CLI and the HTTP adapter are built on.

# Usage

	eng := automata.New()

	def, err := definition.Parse([]byte(`
	name: parity
	start: even
	accept: [even]
	transitions:
	  - {from: even, on: "0", to: odd}
	  - {from: odd, on: "0", to: even}
	`))
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Register(ctx, def); err != nil {
		log.Fatal(err)
	}

	res, err := eng.Evaluate(ctx, "parity", "0101")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Evaluation) // accept(even)

# Minimization

Two strategies are available. ClosureStrategy, the default, groups states whose successors
(over all symbols together) fall into the same group. SymbolStrategy compares successors
symbol by symbol and always preserves the accepted language.
*/
package automata
