/*
Package ports defines the driven ports (interfaces) of the automata engine.

These interfaces decouple the engine from storage backends, so the same registry
of automaton definitions can live in process memory or in Redis.

# Key Interfaces

  - DefinitionStore: persists named automaton definitions.
*/
package ports
