package definition

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Definition is the serializable form of an automaton.
type Definition struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Start       string       `json:"start" yaml:"start" mapstructure:"start"`
	Accept      []string     `json:"accept" yaml:"accept" mapstructure:"accept"`
	Transitions []Transition `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// Transition moves from From to To on every symbol of On.
type Transition struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	On   string `json:"on" yaml:"on" mapstructure:"on"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
}

// Parse decodes a YAML or JSON document.
// Scalars keep their source text, so `on: 01` lists the symbols '0' and '1'.
func Parse(data []byte) (*Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse: %w", domain.ErrInvalidDefinition, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidDefinition)
	}
	raw, err := plain(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping at the top level", domain.ErrInvalidDefinition)
	}
	return Decode(fields)
}

// plain turns a node tree into maps, slices and strings.
// Numbers are not resolved: yaml would read `01` as 1 and drop a symbol.
func plain(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return plain(n.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := plain(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := plain(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node at line %d", n.Line)
	}
}

// Decode converts a generic map, as produced by a YAML or JSON decoder, into a Definition.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDefinition, err)
	}
	return &def, nil
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Marshal encodes the definition as YAML.
func (d *Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Clone returns a deep copy of the definition.
func (d *Definition) Clone() *Definition {
	c := *d
	c.Accept = slices.Clone(d.Accept)
	c.Transitions = slices.Clone(d.Transitions)
	return &c
}

// Validate reports every structural problem of the definition.
// It does not check reachability; see the validator for that.
func (d *Definition) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Start) == "" {
		errs = append(errs, errors.New("start: must not be empty"))
	}
	for i, label := range d.Accept {
		if strings.TrimSpace(label) == "" {
			errs = append(errs, fmt.Errorf("accept[%d]: must not be empty", i))
		}
	}
	for i, t := range d.Transitions {
		if strings.TrimSpace(t.From) == "" {
			errs = append(errs, fmt.Errorf("transitions[%d].from: must not be empty", i))
		}
		if strings.TrimSpace(t.To) == "" {
			errs = append(errs, fmt.Errorf("transitions[%d].to: must not be empty", i))
		}
		if t.On == "" {
			errs = append(errs, fmt.Errorf("transitions[%d].on: must list at least one symbol", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, errors.Join(errs...))
	}
	return nil
}

// Compile validates the definition and builds the automaton it describes.
// Transitions are applied in order, so a later entry for the same state and symbol wins.
func (d *Definition) Compile() (*automaton.DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := automaton.NewBuilder().Start(domain.NewState(d.Start))
	for _, t := range d.Transitions {
		from, to := domain.NewState(t.From), domain.NewState(t.To)
		for _, r := range t.On {
			b.Transition(from, domain.Symbol(r), to)
		}
	}
	for _, label := range d.Accept {
		b.Accept(domain.NewState(label))
	}
	return b.Build()
}

// FromDFA describes an automaton. Parallel transitions between the same two states are grouped
// into one entry with sorted symbols, and entries are sorted by source then target label.
func FromDFA(name string, dfa *automaton.DFA) *Definition {
	type endpoints struct{ from, to string }
	grouped := make(map[endpoints][]rune)
	for _, t := range dfa.Transitions() {
		k := endpoints{from: t.From.Label, to: t.To.Label}
		grouped[k] = append(grouped[k], rune(t.Via))
	}

	transitions := make([]Transition, 0, len(grouped))
	for k, symbols := range grouped {
		slices.Sort(symbols)
		transitions = append(transitions, Transition{From: k.from, On: string(symbols), To: k.to})
	}
	slices.SortFunc(transitions, func(a, b Transition) int {
		return cmp.Or(
			strings.Compare(a.From, b.From),
			strings.Compare(a.To, b.To),
		)
	})

	accept := make([]string, 0)
	for _, s := range dfa.Accepting() {
		accept = append(accept, s.Label)
	}

	return &Definition{
		Name:        name,
		Start:       dfa.Start().Label,
		Accept:      accept,
		Transitions: transitions,
	}
}
