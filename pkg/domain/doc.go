/*
Package domain contains the core value types shared by every layer of the automata engine.

It is kept pure and free of I/O: states, symbols, transition triples, evaluation verdicts,
lifecycle events and the sentinel errors callers match with errors.Is.

# Key Entities

  - State: an immutable identity compared by label.
  - Symbol: one discrete input unit (a rune).
  - Transition: a (from, symbol, to) triple as exposed to renderers and serializers.
  - Evaluation: the verdict of running an input, carrying the state where execution ended.
*/
package domain
