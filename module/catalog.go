package module

import (
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
)

// Free is the rule of a plain free module: it implements no capability, so
// elements over it can be added and scaled but not multiplied.
type Free struct{}

// AddRule multiplies terms by adding them in the ring KT, which turns exponent
// terms into a monoid ring over the additive group of KT.
type AddRule[R, T any, KT ring.Ring[T]] struct{}

func (AddRule[R, T, KT]) Apply(t1, t2 T) (T, R, bool) {
	var k KT
	var r R
	return k.Add(t1, t2), r, false
}

func (AddRule[R, T, KT]) One() T {
	var k KT
	return k.Zero()
}

func (AddRule[R, T, KT]) IsOne(t T) bool {
	var k KT
	return k.IsZero(t)
}

func (AddRule[R, T, KT]) Associative() {}

func (AddRule[R, T, KT]) Commutative() {}

// MulRule multiplies terms in the ring KT.
type MulRule[R, T any, KT ring.Ring[T]] struct{}

func (MulRule[R, T, KT]) Apply(t1, t2 T) (T, R, bool) {
	var k KT
	var r R
	return k.Mul(t1, t2), r, false
}

func (MulRule[R, T, KT]) One() T {
	var k KT
	return k.One()
}

func (MulRule[R, T, KT]) IsOne(t T) bool {
	var k KT
	return k.IsOne(t)
}

func (MulRule[R, T, KT]) Associative() {}

// WordRule multiplies word terms with their multiplicative rule M. Elements
// over it are the free algebra on the letters C when M is concatenation.
type WordRule[R any, C comparable, A any, M monoid.AssociativeRule[C]] struct{}

func (WordRule[R, C, A, M]) Apply(t1, t2 *monoid.Word[C, A, M]) (*monoid.Word[C, A, M], R, bool) {
	var r R
	return monoid.Mul(t1, t2), r, false
}

func (WordRule[R, C, A, M]) One() *monoid.Word[C, A, M] { return monoid.One[C, A, M]() }

func (WordRule[R, C, A, M]) IsOne(w *monoid.Word[C, A, M]) bool { return w.IsEmpty() }

func (WordRule[R, C, A, M]) Associative() {}
