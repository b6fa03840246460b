package monoid

import (
	"fmt"
	"iter"
	"strconv"
)

// None fills a rule slot that should not exist. It implements no Rule method,
// so operations on that slot do not compile.
type None struct{}

// Concat is plain concatenation: the free monoid.
type Concat[C any] struct{}

func (Concat[C]) Apply(word []C, c C) []C { return append(word, c) }

func (Concat[C]) ApplyMany(word, other []C) []C { return append(word, other...) }

func (Concat[C]) ApplySeq(word []C, letters iter.Seq[C]) []C {
	for c := range letters {
		word = append(word, c)
	}
	return word
}

func (Concat[C]) Associative() {}

// Gen is a generator of a free group or its formal inverse.
type Gen[C comparable] struct {
	Base     C
	Inverted bool
}

// Of returns the generator c.
func Of[C comparable](c C) Gen[C] { return Gen[C]{Base: c} }

// InverseOf returns the formal inverse of the generator c.
func InverseOf[C comparable](c C) Gen[C] { return Gen[C]{Base: c, Inverted: true} }

// Inv flips the inversion tag.
func (g Gen[C]) Inv() Gen[C] { return Gen[C]{Base: g.Base, Inverted: !g.Inverted} }

// Exp converts g to an exponent letter with exponent ±1.
func (g Gen[C]) Exp() Exp[C] {
	if g.Inverted {
		return Exp[C]{Base: g.Base, N: -1}
	}
	return Exp[C]{Base: g.Base, N: 1}
}

func (g Gen[C]) String() string {
	if g.Inverted {
		return fmt.Sprint(g.Base) + "⁻¹"
	}
	return fmt.Sprint(g.Base)
}

// Cancel concatenates generators, cancelling a letter against an adjacent
// inverse of the same base: the free group.
type Cancel[C comparable] struct{}

func (Cancel[C]) Apply(word []Gen[C], g Gen[C]) []Gen[C] {
	if n := len(word); n > 0 && word[n-1].Base == g.Base && word[n-1].Inverted != g.Inverted {
		return word[:n-1]
	}
	return append(word, g)
}

func (Cancel[C]) Invert(g Gen[C]) Gen[C] { return g.Inv() }

func (Cancel[C]) Associative() {}

// Exp is a base raised to an integral power.
type Exp[C comparable] struct {
	Base C
	N    int
}

// ExpOf returns c^n.
func ExpOf[C comparable](c C, n int) Exp[C] { return Exp[C]{Base: c, N: n} }

// Inv negates the exponent.
func (e Exp[C]) Inv() Exp[C] { return Exp[C]{Base: e.Base, N: -e.N} }

func (e Exp[C]) String() string {
	if e.N == 1 {
		return fmt.Sprint(e.Base)
	}
	return fmt.Sprint(e.Base) + "^" + strconv.Itoa(e.N)
}

// Compress merges adjacent letters with equal bases by adding exponents. A
// merged exponent of zero removes the letter; zero-exponent letters are never
// stored.
type Compress[C comparable] struct{}

func (Compress[C]) Apply(word []Exp[C], e Exp[C]) []Exp[C] {
	if n := len(word); n > 0 && word[n-1].Base == e.Base {
		sum := word[n-1].N + e.N
		word = word[:n-1]
		if sum != 0 {
			word = append(word, Exp[C]{Base: e.Base, N: sum})
		}
		return word
	}
	if e.N == 0 {
		return word
	}
	return append(word, e)
}

func (Compress[C]) Invert(e Exp[C]) Exp[C] { return e.Inv() }

func (Compress[C]) Associative() {}
