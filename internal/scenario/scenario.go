// Package scenario loads YAML scenario files and replays them against the free
// constructions. A scenario picks one construction and one coefficient ring,
// then applies a list of steps to a single element, checking its rendering
// along the way.
package scenario

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind = errors.New("scenario: unknown kind")
	ErrUnknownRing = errors.New("scenario: unknown ring")
	ErrUnknownOp   = errors.New("scenario: unknown op")
	ErrExpectation = errors.New("scenario: expectation failed")
	ErrInvalid     = errors.New("scenario: invalid step")
)

// Kind selects the construction a scenario drives.
type Kind string

const (
	KindModule    Kind = "module"
	KindAlgebra   Kind = "algebra"
	KindGroup     Kind = "group"
	KindPowMonoid Kind = "powmonoid"
	KindMonoid    Kind = "monoid"
)

// Ring selects the coefficient ring of module and algebra scenarios.
type Ring string

const (
	RingFloat64    Ring = "float64"
	RingInt        Ring = "int"
	RingRat        Ring = "rat"
	RingComplex128 Ring = "complex128"
)

var rings = map[Ring]bool{RingFloat64: true, RingInt: true, RingRat: true, RingComplex128: true}

// Ops available per kind.
var ops = map[Kind]map[string]bool{
	KindModule:    set("add", "sub", "scale", "div", "neg", "expect"),
	KindAlgebra:   set("add", "sub", "scale", "div", "neg", "expect", "mul", "pow", "commutator", "one"),
	KindGroup:     set("mul", "div", "inv", "pow", "commutator", "expect"),
	KindPowMonoid: set("mul", "div", "inv", "pow", "commutator", "add", "expect"),
	KindMonoid:    set("mul", "pow", "add", "expect"),
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Ops returns the op names accepted for kind.
func Ops(kind Kind) []string {
	return slices.Sorted(maps.Keys(ops[kind]))
}

// Letters is a term written either as a single scalar ("x", or "x y" for
// several letters) or as a YAML sequence.
type Letters []string

func (l *Letters) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*l = strings.Fields(n.Value)
	case yaml.SequenceNode:
		var s []string
		if err := n.Decode(&s); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*l = s
	default:
		return fmt.Errorf("line %d: term must be a letter or a list of letters: %w", n.Line, ErrInvalid)
	}
	return nil
}

// Step is one operation applied to the scenario's element.
type Step struct {
	Op   string  `yaml:"op"`
	Coef string  `yaml:"coef,omitempty"`
	Term Letters `yaml:"term,omitempty"`
	Exp  int64   `yaml:"exp,omitempty"`
	Want string  `yaml:"want,omitempty"`
}

// Scenario is the parsed form of a scenario file.
type Scenario struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Ring  Ring   `yaml:"ring,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file. A missing name defaults to the file's base name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Validate checks kind, ring and every step before anything runs.
// Coefficient literals are checked when the step executes, since their syntax
// belongs to the ring.
func (s *Scenario) Validate() error {
	allowed, ok := ops[s.Kind]
	if !ok {
		return fmt.Errorf("kind %q: %w", s.Kind, ErrUnknownKind)
	}
	switch s.Kind {
	case KindModule, KindAlgebra:
		if !rings[s.Ring] {
			return fmt.Errorf("ring %q: %w", s.Ring, ErrUnknownRing)
		}
	default:
		if s.Ring != "" {
			return fmt.Errorf("ring %q on %s scenario: %w", s.Ring, s.Kind, ErrUnknownRing)
		}
	}
	for i, st := range s.Steps {
		if !allowed[st.Op] {
			return fmt.Errorf("step %d: %q on %s: %w", i, st.Op, s.Kind, ErrUnknownOp)
		}
		if err := s.validateStep(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

func (s *Scenario) validateStep(st Step) error {
	coefficient := s.Kind == KindModule || s.Kind == KindAlgebra
	switch st.Op {
	case "expect":
		if st.Want == "" {
			return fmt.Errorf("missing want: %w", ErrInvalid)
		}
	case "add", "sub":
		if coefficient && st.Coef == "" {
			return fmt.Errorf("missing coef: %w", ErrInvalid)
		}
		if s.Kind == KindModule && len(st.Term) != 1 {
			return fmt.Errorf("module terms are single letters, got %v: %w", []string(st.Term), ErrInvalid)
		}
	case "scale", "div", "mul", "commutator":
		if coefficient && st.Coef == "" {
			return fmt.Errorf("missing coef: %w", ErrInvalid)
		}
	case "pow":
		if st.Exp < 0 && (s.Kind == KindAlgebra || s.Kind == KindMonoid) {
			return fmt.Errorf("exponent %d: %w", st.Exp, ErrInvalid)
		}
	}
	return nil
}
