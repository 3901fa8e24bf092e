// Package definition reads and writes automata as YAML (or JSON) documents.
//
// A definition names a start state, a list of accepting states and a list of transitions. Each
// transition lists one or more symbols in "on"; every rune is one symbol:
//
//	name: signed-integers
//	start: start
//	accept: [number, zero]
//	transitions:
//	  - {from: start, on: "-", to: neg}
//	  - {from: start, on: "0", to: zero}
//	  - {from: start, on: "123456789", to: number}
//	  - {from: number, on: "0123456789", to: number}
//
// Scalars keep their source text, so an unquoted `on: 01` is read as the symbols "0" and "1".
// Quote symbols that are YAML-significant characters.
package definition
