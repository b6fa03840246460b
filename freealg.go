// Package freealg names the common free constructions built from the module
// and monoid engines.
//
// Every type here is an alias, so values interoperate with the generic
// functions of the engine packages:
//
//	p := freealg.NewFreeAlgebra[*big.Rat, string, ring.Rat]()
//	p.AddTerm(big.NewRat(1, 2), freealg.Word("x", "y"))
//	q := module.Pow(p, 3)
//
//	g := freealg.Group(monoid.Of("x"), monoid.InverseOf("y"))
//	h := monoid.Commutator(g, monoid.Inv(g))
package freealg

import (
	"github.com/comalice/freealg/module"
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
	"github.com/comalice/freealg/term"
)

// FreeModule is the free R-module over comparable terms T. It has no
// multiplication.
type FreeModule[R any, T comparable, K ring.Ring[R]] = module.Element[R, T, K, term.Comparable[T], module.Free]

// MonoidRing is the ring of finite sums of terms T, multiplied in the ring KT
// (for instance polynomials in one variable when T are exponents and KT adds
// them).
type MonoidRing[R any, T comparable, K ring.Ring[R], A module.UnitalAssociativeRule[R, T]] = module.Element[R, T, K, term.Comparable[T], A]

// Polynomial is the monoid ring over integer exponents.
type Polynomial[R any, K ring.Ring[R]] = MonoidRing[R, int64, K, module.AddRule[R, int64, ring.Int]]

// FreeMonoid is the free monoid on C.
type FreeMonoid[C comparable] = monoid.Word[C, monoid.Concat[C], monoid.Concat[C]]

// FreeGroup is the free group on C.
type FreeGroup[C comparable] = monoid.Word[monoid.Gen[C], monoid.None, monoid.Cancel[C]]

// FreePowMonoid is the free group on C in run-length form: adjacent powers of
// one base are merged. Its additive slot concatenates.
type FreePowMonoid[C comparable] = monoid.Word[monoid.Exp[C], monoid.Concat[monoid.Exp[C]], monoid.Compress[C]]

// FreeAlgebra is the free associative R-algebra on C: linear combinations of
// words in the free monoid.
type FreeAlgebra[R any, C comparable, K ring.Ring[R]] = module.Element[R, *FreeMonoid[C], K, monoid.Hasher[C, monoid.Concat[C], monoid.Concat[C]], module.WordRule[R, C, monoid.Concat[C], monoid.Concat[C]]]

// NewFreeModule returns the zero element.
func NewFreeModule[R any, T comparable, K ring.Ring[R]]() *FreeModule[R, T, K] {
	return &FreeModule[R, T, K]{}
}

// NewPolynomial returns the zero polynomial.
func NewPolynomial[R any, K ring.Ring[R]]() *Polynomial[R, K] {
	return &Polynomial[R, K]{}
}

// Monomial returns r·x^n.
func Monomial[R any, K ring.Ring[R]](r R, n int64) *Polynomial[R, K] {
	return module.FromPair[R, int64, K, term.Comparable[int64], module.AddRule[R, int64, ring.Int]](r, n)
}

// NewFreeAlgebra returns the zero element.
func NewFreeAlgebra[R any, C comparable, K ring.Ring[R]]() *FreeAlgebra[R, C, K] {
	return &FreeAlgebra[R, C, K]{}
}

// Word returns the word c1·c2·… of the free monoid.
func Word[C comparable](letters ...C) *FreeMonoid[C] {
	return monoid.Product[C, monoid.Concat[C], monoid.Concat[C]](letters...)
}

// Group returns the reduced product of generators in the free group.
func Group[C comparable](letters ...monoid.Gen[C]) *FreeGroup[C] {
	return monoid.Product[monoid.Gen[C], monoid.None, monoid.Cancel[C]](letters...)
}

// PowWord returns the compressed product of powers.
func PowWord[C comparable](letters ...monoid.Exp[C]) *FreePowMonoid[C] {
	return monoid.Product[monoid.Exp[C], monoid.Concat[monoid.Exp[C]], monoid.Compress[C]](letters...)
}
