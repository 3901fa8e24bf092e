package automata_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/definition"
)

// ExampleEngine_Evaluate registers a definition parsed from YAML and evaluates a few inputs.
func ExampleEngine_Evaluate() {
	def, err := definition.Parse([]byte(`
name: parity
start: even
accept: [even]
transitions:
  - {from: even, on: "0", to: odd}
  - {from: even, on: "1", to: even}
  - {from: odd, on: "0", to: even}
  - {from: odd, on: "1", to: odd}
`))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	eng := automata.New()
	if err := eng.Register(ctx, def); err != nil {
		log.Fatal(err)
	}

	for _, input := range []string{"", "0", "0110"} {
		res, err := eng.Evaluate(ctx, "parity", input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%q -> %s\n", input, res.Evaluation)
	}
	// Output:
	// "" -> accept(even)
	// "0" -> reject(odd)
	// "0110" -> accept(even)
}

// ExampleEngine_Minimize collapses an automaton that accepts strings with at least two a's.
func ExampleEngine_Minimize() {
	ctx := context.Background()
	eng := automata.New()
	if err := eng.Register(ctx, twoAs()); err != nil {
		log.Fatal(err)
	}

	m, err := eng.Minimize(ctx, "two-as")
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range m.Automaton.Transitions() {
		fmt.Printf("%s --%s--> %s\n", t.From, t.Via, t.To)
	}
	// Output:
	// q1q2 --a--> q3q4
	// q1q2 --b--> q1q2
	// q3q4 --a--> q5
	// q3q4 --b--> q3q4
}
