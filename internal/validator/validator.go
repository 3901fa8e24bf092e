package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Kind identifies what an issue is about.
type Kind string

const (
	KindOrphanStart  Kind = "orphan-start"
	KindOrphanAccept Kind = "orphan-accept"
	KindUnreachable  Kind = "unreachable"
	KindImplicitLoop Kind = "implicit-loop"
)

// Issue is one finding about an automaton.
type Issue struct {
	Kind     Kind         `json:"kind"`
	Severity Severity     `json:"severity"`
	State    domain.State `json:"state"`
	Message  string       `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
}

// Inspect reports orphan start/accept states, states unreachable from the start state and
// states that rely on the self-loop rule for part of the alphabet.
// None of these prevent an automaton from being built or evaluated.
func Inspect(dfa *automaton.DFA) []Issue {
	var issues []Issue

	states := make(map[domain.State]bool)
	for _, s := range dfa.States() {
		states[s] = true
	}

	start := dfa.Start()
	if !states[start] {
		issues = append(issues, Issue{
			Kind:     KindOrphanStart,
			Severity: SeverityWarning,
			State:    start,
			Message:  fmt.Sprintf("start state '%s' has no transitions", start),
		})
	}

	for _, s := range dfa.Accepting() {
		if !states[s] {
			issues = append(issues, Issue{
				Kind:     KindOrphanAccept,
				Severity: SeverityWarning,
				State:    s,
				Message:  fmt.Sprintf("accept state '%s' has no transitions and is ignored by minimization", s),
			})
		}
	}

	alphabet := dfa.Alphabet()

	// Crawl from the start state over explicit transitions.
	visited := map[domain.State]bool{start: true}
	queue := []domain.State{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, via := range alphabet {
			next, ok := dfa.Lookup(current, via)
			if ok && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, s := range dfa.States() {
		if !visited[s] {
			issues = append(issues, Issue{
				Kind:     KindUnreachable,
				Severity: SeverityWarning,
				State:    s,
				Message:  fmt.Sprintf("state '%s' is unreachable from '%s'", s, start),
			})
		}

		var missing []string
		for _, via := range alphabet {
			if _, ok := dfa.Lookup(s, via); !ok {
				missing = append(missing, via.String())
			}
		}
		if len(missing) > 0 {
			issues = append(issues, Issue{
				Kind:     KindImplicitLoop,
				Severity: SeverityInfo,
				State:    s,
				Message:  fmt.Sprintf("state '%s' stays put on %s", s, strings.Join(missing, ",")),
			})
		}
	}

	return issues
}

// Validate returns an error listing every warning found by Inspect.
// When strict is set, informational findings count as errors too.
func Validate(dfa *automaton.DFA, strict bool) error {
	var msgs []string
	for _, issue := range Inspect(dfa) {
		if issue.Severity == SeverityWarning || strict {
			msgs = append(msgs, issue.Message)
		}
	}

	if len(msgs) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(msgs), strings.Join(msgs, "\n- "))
	}
	return nil
}
