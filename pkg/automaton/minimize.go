package automaton

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Report describes how an automaton was partitioned.
type Report struct {
	Strategy Strategy
	// Groups are the final equivalence classes, each sorted by label.
	Groups [][]domain.State
	// Rounds counts full scans over the partition, including the final one that found nothing.
	Rounds int
	// Splits counts groups created by refinement.
	Splits int
	// ShortCircuit is set when the partition had at most two groups and the input was returned.
	ShortCircuit bool
}

// Minimize returns the collapsed form of d. The receiver is never modified.
func (d *DFA) Minimize(opts ...Option) *DFA {
	return Minimize(d, opts...)
}

// Minimize returns the collapsed form of d.
func Minimize(d *DFA, opts ...Option) *DFA {
	out, _ := MinimizeWithReport(d, opts...)
	return out
}

// Partition returns the equivalence classes d would be merged into.
func Partition(d *DFA, opts ...Option) [][]domain.State {
	c := newConfig(opts)
	groups, _, _ := partition(d, c)
	return sortGroups(groups)
}

// MinimizeWithReport minimizes d and describes the partition that produced the result.
func MinimizeWithReport(d *DFA, opts ...Option) (*DFA, Report) {
	c := newConfig(opts)
	groups, rounds, splits := partition(d, c)

	report := Report{
		Strategy: c.strategy,
		Groups:   sortGroups(groups),
		Rounds:   rounds,
		Splits:   splits,
	}

	if len(groups) <= 2 {
		report.ShortCircuit = true
		c.logger.Debug("partition already minimal", "groups", len(groups))
		return d.Clone(), report
	}
	return merge(d, groups), report
}

type group map[domain.State]struct{}

func (g group) add(s domain.State) {
	g[s] = struct{}{}
}

func (g group) subsetOf(other group) bool {
	for s := range g {
		if _, ok := other[s]; !ok {
			return false
		}
	}
	return true
}

func (g group) equal(other group) bool {
	return len(g) == len(other) && g.subsetOf(other)
}

func (g group) sorted() []domain.State {
	out := make([]domain.State, 0, len(g))
	for s := range g {
		out = append(out, s)
	}
	slices.SortFunc(out, compareStates)
	return out
}

func (g group) String() string {
	labels := make([]string, 0, len(g))
	for _, s := range g.sorted() {
		labels = append(labels, s.Label)
	}
	return "{" + strings.Join(labels, ",") + "}"
}

func (g group) label() string {
	var sb strings.Builder
	for _, s := range g.sorted() {
		sb.WriteString(s.Label)
	}
	return sb.String()
}

func partition(d *DFA, c *config) (groups []group, rounds, splits int) {
	accepting, rest := group{}, group{}
	for _, s := range d.States() {
		if d.IsAccept(s) {
			accepting.add(s)
		} else {
			rest.add(s)
		}
	}
	for _, g := range []group{accepting, rest} {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	c.logger.Debug("initial grouping", "strategy", c.strategy, "groups", describe(groups))

	switch c.strategy {
	case SymbolStrategy:
		return refineBySymbol(d, groups, c)
	default:
		return refineByClosure(d, groups, c)
	}
}

// closures maps every state with outgoing transitions to the set of its successors.
func closures(d *DFA) map[domain.State]group {
	out := make(map[domain.State]group)
	for k, to := range d.transitions {
		c, ok := out[k.from]
		if !ok {
			c = group{}
			out[k.from] = c
		}
		c.add(to)
	}
	return out
}

func refineByClosure(d *DFA, groups []group, c *config) ([]group, int, int) {
	succ := closures(d)
	rounds, splits := 0, 0

	for {
		rounds++
		idx, split := findClosureSplit(groups, succ)
		if split == nil {
			return groups, rounds, splits
		}

		for s := range split {
			delete(groups[idx], s)
		}
		groups = append(groups, split)
		splits++
		c.logger.Debug("split out", "from", groups[idx].String(), "group", split.String())
	}
}

// findClosureSplit scans groups in order and returns the first group (by index) together with
// the members whose successors all fall into one existing group, if that subset is a real split.
func findClosureSplit(groups []group, succ map[domain.State]group) (int, group) {
	for i, g := range groups {
		if len(g) <= 1 {
			continue
		}

		candidates := make([]group, len(groups))
		for s := range g {
			for j, target := range groups {
				if !succ[s].subsetOf(target) {
					continue
				}
				if candidates[j] == nil {
					candidates[j] = group{}
				}
				candidates[j].add(s)
			}
		}

		for _, set := range candidates {
			// Splitting out every member would change nothing.
			if len(set) > 1 && !set.equal(g) {
				return i, set
			}
		}
	}
	return -1, nil
}

func refineBySymbol(d *DFA, groups []group, c *config) ([]group, int, int) {
	alphabet := d.Alphabet()
	rounds, splits := 0, 0

	for {
		rounds++
		index := make(map[domain.State]int)
		for i, g := range groups {
			for s := range g {
				index[s] = i
			}
		}

		next := make([]group, 0, len(groups))
		for _, g := range groups {
			buckets := make(map[string]group)
			var order []string
			for _, s := range g.sorted() {
				sig := signature(d, s, alphabet, index)
				b, ok := buckets[sig]
				if !ok {
					b = group{}
					buckets[sig] = b
					order = append(order, sig)
				}
				b.add(s)
			}
			for _, sig := range order {
				next = append(next, buckets[sig])
			}
			if len(order) > 1 {
				c.logger.Debug("split out", "from", g.String(), "parts", len(order))
			}
		}

		if len(next) == len(groups) {
			return groups, rounds, splits
		}
		splits += len(next) - len(groups)
		groups = next
	}
}

func signature(d *DFA, s domain.State, alphabet []domain.Symbol, index map[domain.State]int) string {
	var sb strings.Builder
	for _, via := range alphabet {
		sb.WriteString(strconv.Itoa(index[d.Move(s, via)]))
		sb.WriteByte(',')
	}
	return sb.String()
}

// merge rebuilds d with every group collapsed into one state.
// States outside every group (orphan start or accept states) keep their identity.
// A merged label that is already in use gets primes appended until it is unique.
func merge(d *DFA, groups []group) *DFA {
	grouped := make(map[domain.State]struct{})
	taken := make(map[string]struct{})
	for _, g := range groups {
		for s := range g {
			grouped[s] = struct{}{}
			if len(g) == 1 {
				taken[s.Label] = struct{}{}
			}
		}
	}
	for _, s := range append(slices.Collect(maps.Keys(d.accept)), d.start) {
		if _, ok := grouped[s]; !ok {
			taken[s.Label] = struct{}{}
		}
	}

	ordered := slices.Clone(groups)
	slices.SortFunc(ordered, func(a, b group) int {
		return compareStates(a.sorted()[0], b.sorted()[0])
	})

	mapping := make(map[domain.State]domain.State)
	for _, g := range ordered {
		label := g.label()
		if len(g) > 1 {
			for {
				if _, clash := taken[label]; !clash {
					break
				}
				label += "'"
			}
			taken[label] = struct{}{}
		}
		merged := domain.NewState(label)
		for s := range g {
			mapping[s] = merged
		}
	}
	resolve := func(s domain.State) domain.State {
		if m, ok := mapping[s]; ok {
			return m
		}
		return s
	}

	b := NewBuilder()
	for _, t := range d.Transitions() {
		b.Transition(resolve(t.From), t.Via, resolve(t.To))
	}
	for s := range d.accept {
		b.Accept(resolve(s))
	}
	b.Start(resolve(d.start))
	return b.build()
}

func sortGroups(groups []group) [][]domain.State {
	out := make([][]domain.State, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.sorted())
	}
	slices.SortFunc(out, func(a, b []domain.State) int {
		return compareStates(a[0], b[0])
	})
	return out
}

func describe(groups []group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}
	return out
}
