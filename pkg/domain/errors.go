package domain

import "errors"

// ErrNoStartState is returned when an automaton is built without a start state.
var ErrNoStartState = errors.New("start state not set")

// ErrAutomatonNotFound is returned when a named automaton cannot be found in the store.
var ErrAutomatonNotFound = errors.New("automaton not found")

// ErrInvalidDefinition is returned when an automaton definition cannot be compiled.
var ErrInvalidDefinition = errors.New("invalid automaton definition")
