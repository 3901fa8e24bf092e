/*
Package automaton implements deterministic finite automata: a single-use Builder, the immutable
DFA it produces, a Cursor that evaluates input against a DFA, and a partition-refinement
minimizer.

Unmapped (state, symbol) pairs are not errors: Move leaves the automaton in the state it was in.

	q0, q1 := domain.NewState("q0"), domain.NewState("q1")

	dfa, err := automaton.NewBuilder().
		Start(q0).
		Transition(q0, '0', q1).
		Transition(q1, '0', q0).
		Accept(q1).
		Build()
	if err != nil {
		return err
	}

	dfa.Evaluate("010") // Accept(q1)

	minimal := dfa.Minimize()

Minimize is deterministic: merged states are labeled by the sorted concatenation of the labels
they replace, so two runs over equal automata always produce equal results.
*/
package automaton
