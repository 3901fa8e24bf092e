/*
Package dsl provides a fluent API for declaring automata in Go code.

It is sugar over automaton.Builder: states are declared by label, transitions take a string
whose every rune is a symbol, and the builder can be compiled as many times as needed.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/automata/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.State("even").Start().Accept().
			On("0", "odd").
			Loop("1")

		b.State("odd").
			On("0", "even").
			Loop("1")

		dfa, err := b.Build()
		if err != nil {
			panic(err)
		}
		fmt.Println(dfa.Evaluate("1001")) // accept(even)
	}
*/
package dsl
