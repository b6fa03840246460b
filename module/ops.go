package module

import (
	"github.com/comalice/freealg/internal/power"
	"github.com/comalice/freealg/ring"
	"github.com/comalice/freealg/term"
)

// mulInto merges e·(r1 t1) into out. out must not be e.
func mulInto[R, T any, K ring.Ring[R], H term.Hasher[T], A Rule[R, T]](out, e *Element[R, T, K, H, A], r1 R, t1 T) {
	var k K
	var a A
	for r, t := range e.All() {
		t2, r2, ok := a.Apply(t, t1)
		c := k.Mul(r, r1)
		if ok {
			c = k.Mul(c, r2)
		}
		out.insertTerm(c, t2)
	}
}

// MulTerm returns e·(r1 t1).
func MulTerm[R, T any, K ring.Ring[R], H term.Hasher[T], A Rule[R, T]](e *Element[R, T, K, H, A], r1 R, t1 T) *Element[R, T, K, H, A] {
	out := &Element[R, T, K, H, A]{}
	mulInto(out, e, r1, t1)
	return out
}

// Mul returns a·b.
func Mul[R, T any, K ring.Ring[R], H term.Hasher[T], A Rule[R, T]](a, b *Element[R, T, K, H, A]) *Element[R, T, K, H, A] {
	out := &Element[R, T, K, H, A]{}
	for r, t := range b.All() {
		mulInto(out, a, r, t)
	}
	return out
}

// Commutator returns a·b - b·a.
func Commutator[R, T any, K ring.Ring[R], H term.Hasher[T], A Rule[R, T]](a, b *Element[R, T, K, H, A]) *Element[R, T, K, H, A] {
	return Mul(a, b).Sub(Mul(b, a))
}

// One returns 1·u where u is the unit term of A.
func One[R, T any, K ring.Ring[R], H term.Hasher[T], A Unital[T]]() *Element[R, T, K, H, A] {
	var a A
	return FromTerm[R, T, K, H, A](a.One())
}

// IsOne reports whether e is exactly 1·u.
func IsOne[R, T any, K ring.Ring[R], H term.Hasher[T], A Unital[T]](e *Element[R, T, K, H, A]) bool {
	if e.Len() != 1 {
		return false
	}
	var k K
	var a A
	for r, t := range e.All() {
		return k.IsOne(r) && a.IsOne(t)
	}
	return false
}

// Product multiplies elems left to right, starting from One.
func Product[R, T any, K ring.Ring[R], H term.Hasher[T], A UnitalRule[R, T]](elems ...*Element[R, T, K, H, A]) *Element[R, T, K, H, A] {
	p := One[R, T, K, H, A]()
	for _, e := range elems {
		p = Mul(p, e)
	}
	return p
}

// Pow returns e multiplied by itself n times; Pow(e, 0) is One.
func Pow[R, T any, K ring.Ring[R], H term.Hasher[T], A UnitalAssociativeRule[R, T]](e *Element[R, T, K, H, A], n uint64) *Element[R, T, K, H, A] {
	return power.Square(e.Clone(), n, One[R, T, K, H, A], Mul[R, T, K, H, A])
}
