/*
Package observability provides tools for monitoring the automata engine.

Metrics turns engine lifecycle hooks into Prometheus collectors: evaluations are
counted by automaton and verdict, and minimizations record how many states they
removed and how long the refinement took.
*/
package observability
