package scenario

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/comalice/freealg"
	"github.com/comalice/freealg/module"
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
)

// machine holds the element of one running scenario.
type machine interface {
	apply(st Step) error
	render(compact bool) string
}

// parsingRing is a ring whose literals can be read from a scenario file.
type parsingRing[R any] interface {
	ring.Ring[R]
	ring.Parser[R]
}

func newMachine(s *Scenario) (machine, error) {
	switch s.Kind {
	case KindModule:
		switch s.Ring {
		case RingFloat64:
			return &moduleMachine[float64, ring.Float64]{}, nil
		case RingInt:
			return &moduleMachine[int64, ring.Int]{}, nil
		case RingRat:
			return &moduleMachine[*big.Rat, ring.Rat]{}, nil
		case RingComplex128:
			return &moduleMachine[complex128, ring.Complex128]{}, nil
		}
		return nil, fmt.Errorf("ring %q: %w", s.Ring, ErrUnknownRing)
	case KindAlgebra:
		switch s.Ring {
		case RingFloat64:
			return newAlgebraMachine[float64, ring.Float64](), nil
		case RingInt:
			return newAlgebraMachine[int64, ring.Int](), nil
		case RingRat:
			return newAlgebraMachine[*big.Rat, ring.Rat](), nil
		case RingComplex128:
			return newAlgebraMachine[complex128, ring.Complex128](), nil
		}
		return nil, fmt.Errorf("ring %q: %w", s.Ring, ErrUnknownRing)
	case KindGroup:
		return groupMachine(), nil
	case KindPowMonoid:
		return powMachine(), nil
	case KindMonoid:
		return monoidMachine(), nil
	}
	return nil, fmt.Errorf("kind %q: %w", s.Kind, ErrUnknownKind)
}

func parseCoef[R any, K parsingRing[R]](s string) (R, error) {
	var k K
	r, err := k.Parse(s)
	if err != nil {
		return r, fmt.Errorf("coef %q: %w", s, err)
	}
	return r, nil
}

type moduleMachine[R any, K parsingRing[R]] struct {
	e freealg.FreeModule[R, string, K]
}

func (m *moduleMachine[R, K]) apply(st Step) error {
	switch st.Op {
	case "add", "sub":
		r, err := parseCoef[R, K](st.Coef)
		if err != nil {
			return err
		}
		if st.Op == "add" {
			m.e.AddTerm(r, st.Term[0])
		} else {
			m.e.SubTerm(r, st.Term[0])
		}
	case "scale", "div":
		r, err := parseCoef[R, K](st.Coef)
		if err != nil {
			return err
		}
		if st.Op == "scale" {
			m.e.Scale(r)
		} else {
			m.e.DivScalar(r)
		}
	case "neg":
		m.e.Neg()
	default:
		return fmt.Errorf("%q: %w", st.Op, ErrUnknownOp)
	}
	return nil
}

func (m *moduleMachine[R, K]) render(compact bool) string {
	if compact {
		return fmt.Sprintf("%#v", &m.e)
	}
	return m.e.String()
}

type algebraMachine[R any, K parsingRing[R]] struct {
	e *freealg.FreeAlgebra[R, string, K]
}

func newAlgebraMachine[R any, K parsingRing[R]]() *algebraMachine[R, K] {
	return &algebraMachine[R, K]{e: freealg.NewFreeAlgebra[R, string, K]()}
}

func (m *algebraMachine[R, K]) apply(st Step) error {
	if st.Op == "neg" {
		m.e.Neg()
		return nil
	}
	if st.Op == "one" {
		m.e = module.One[R, *freealg.FreeMonoid[string], K, monoid.Hasher[string, monoid.Concat[string], monoid.Concat[string]], module.WordRule[R, string, monoid.Concat[string], monoid.Concat[string]]]()
		return nil
	}
	if st.Op == "pow" {
		m.e = module.Pow(m.e, uint64(st.Exp))
		return nil
	}
	r, err := parseCoef[R, K](st.Coef)
	if err != nil {
		return err
	}
	w := freealg.Word([]string(st.Term)...)
	switch st.Op {
	case "add":
		m.e.AddTerm(r, w)
	case "sub":
		m.e.SubTerm(r, w)
	case "scale":
		m.e.Scale(r)
	case "div":
		m.e.DivScalar(r)
	case "mul":
		m.e = module.MulTerm(m.e, r, w)
	case "commutator":
		other := freealg.NewFreeAlgebra[R, string, K]().AddTerm(r, w)
		m.e = module.Commutator(m.e, other)
	default:
		return fmt.Errorf("%q: %w", st.Op, ErrUnknownOp)
	}
	return nil
}

func (m *algebraMachine[R, K]) render(compact bool) string {
	if compact {
		return fmt.Sprintf("%#v", m.e)
	}
	return m.e.String()
}

// wordOp applies one step to a word, given the step's letters already parsed.
type wordOp[C comparable, A, M any] func(w *monoid.Word[C, A, M], letters []C, exp int64) *monoid.Word[C, A, M]

type wordMachine[C comparable, A, M any] struct {
	w      *monoid.Word[C, A, M]
	letter func(string) (C, error)
	ops    map[string]wordOp[C, A, M]
}

func (m *wordMachine[C, A, M]) apply(st Step) error {
	op, ok := m.ops[st.Op]
	if !ok {
		return fmt.Errorf("%q: %w", st.Op, ErrUnknownOp)
	}
	letters := make([]C, 0, len(st.Term))
	for _, s := range st.Term {
		c, err := m.letter(s)
		if err != nil {
			return err
		}
		letters = append(letters, c)
	}
	m.w = op(m.w, letters, st.Exp)
	return nil
}

func (m *wordMachine[C, A, M]) render(compact bool) string {
	if compact {
		return fmt.Sprintf("%#v", m.w)
	}
	return m.w.String()
}

func monoidMachine() *wordMachine[string, monoid.Concat[string], monoid.Concat[string]] {
	type w = freealg.FreeMonoid[string]
	return &wordMachine[string, monoid.Concat[string], monoid.Concat[string]]{
		w:      freealg.Word[string](),
		letter: func(s string) (string, error) { return s, nil },
		ops: map[string]wordOp[string, monoid.Concat[string], monoid.Concat[string]]{
			"mul": func(v *w, l []string, _ int64) *w { return monoid.MulSeq(v, slices.Values(l)) },
			"add": func(v *w, l []string, _ int64) *w { return monoid.AddSeq(v, slices.Values(l)) },
			"pow": func(v *w, _ []string, n int64) *w { return monoid.Pow(v, uint64(n)) },
		},
	}
}

// parseGen reads "x" as a generator and "x⁻¹" or "x^-1" as its inverse.
func parseGen(s string) (monoid.Gen[string], error) {
	for _, suffix := range []string{"⁻¹", "^-1"} {
		if base, ok := strings.CutSuffix(s, suffix); ok && base != "" {
			return monoid.InverseOf(base), nil
		}
	}
	if s == "" || strings.ContainsAny(s, "^⁻") {
		return monoid.Gen[string]{}, fmt.Errorf("generator %q: %w", s, ErrInvalid)
	}
	return monoid.Of(s), nil
}

func groupMachine() *wordMachine[monoid.Gen[string], monoid.None, monoid.Cancel[string]] {
	type w = freealg.FreeGroup[string]
	return &wordMachine[monoid.Gen[string], monoid.None, monoid.Cancel[string]]{
		w:      freealg.Group[string](),
		letter: parseGen,
		ops: map[string]wordOp[monoid.Gen[string], monoid.None, monoid.Cancel[string]]{
			"mul":        func(v *w, l []monoid.Gen[string], _ int64) *w { return monoid.MulSeq(v, slices.Values(l)) },
			"div":        func(v *w, l []monoid.Gen[string], _ int64) *w { return monoid.Div(v, freealg.Group(l...)) },
			"inv":        func(v *w, _ []monoid.Gen[string], _ int64) *w { return monoid.Inv(v) },
			"pow":        func(v *w, _ []monoid.Gen[string], n int64) *w { return monoid.PowInt(v, n) },
			"commutator": func(v *w, l []monoid.Gen[string], _ int64) *w { return monoid.Commutator(v, freealg.Group(l...)) },
		},
	}
}

// parseExp reads "x^n", with "x" meaning x^1 and "x⁻¹" meaning x^-1.
func parseExp(s string) (monoid.Exp[string], error) {
	if base, ok := strings.CutSuffix(s, "⁻¹"); ok && base != "" {
		return monoid.ExpOf(base, -1), nil
	}
	base, exp, found := strings.Cut(s, "^")
	if base == "" {
		return monoid.Exp[string]{}, fmt.Errorf("power %q: %w", s, ErrInvalid)
	}
	if !found {
		return monoid.ExpOf(base, 1), nil
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return monoid.Exp[string]{}, fmt.Errorf("power %q: %w", s, ErrInvalid)
	}
	return monoid.ExpOf(base, n), nil
}

func powMachine() *wordMachine[monoid.Exp[string], monoid.Concat[monoid.Exp[string]], monoid.Compress[string]] {
	type w = freealg.FreePowMonoid[string]
	type e = monoid.Exp[string]
	return &wordMachine[e, monoid.Concat[e], monoid.Compress[string]]{
		w:      freealg.PowWord[string](),
		letter: parseExp,
		ops: map[string]wordOp[e, monoid.Concat[e], monoid.Compress[string]]{
			"mul":        func(v *w, l []e, _ int64) *w { return monoid.MulSeq(v, slices.Values(l)) },
			"add":        func(v *w, l []e, _ int64) *w { return monoid.AddSeq(v, slices.Values(l)) },
			"div":        func(v *w, l []e, _ int64) *w { return monoid.Div(v, freealg.PowWord(l...)) },
			"inv":        func(v *w, _ []e, _ int64) *w { return monoid.Inv(v) },
			"pow":        func(v *w, _ []e, n int64) *w { return monoid.PowInt(v, n) },
			"commutator": func(v *w, l []e, _ int64) *w { return monoid.Commutator(v, freealg.PowWord(l...)) },
		},
	}
}
