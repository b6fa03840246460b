// Package ring defines the coefficient capability consumed by the free
// constructions, plus a handful of concrete rings.
//
// A ring is selected at compile time as a zero-size type parameter. Engines
// obtain an instance with `var k K` and never store it, so every ring type must
// be usable as its zero value.
//
// Failure modes of the arithmetic itself (integer division by zero, overflow,
// division by a non-unit) belong to the ring. The engines built on top of this
// package never check for them.
package ring

import "errors"

// ErrParse is returned by Parser implementations for malformed literals.
var ErrParse = errors.New("ring: invalid literal")

// Ring is the numeric capability required of coefficients.
type Ring[R any] interface {
	Zero() R
	One() R
	Add(a, b R) R
	Neg(a R) R
	Mul(a, b R) R
	Div(a, b R) R
	IsZero(a R) bool
	IsOne(a R) bool
}

// Printer is an optional capability: a ring that knows how to render its own
// values, including its zero literal.
type Printer[R any] interface {
	Print(r R) string
}

// Parser is an optional capability used by tooling that reads coefficients
// from configuration files.
type Parser[R any] interface {
	Parse(s string) (R, error)
}

// Sub returns a - b using only the Ring operations.
func Sub[R any, K Ring[R]](a, b R) R {
	var k K
	return k.Add(a, k.Neg(b))
}

// Equal reports whether a - b is zero in K.
func Equal[R any, K Ring[R]](a, b R) bool {
	var k K
	return k.IsZero(Sub[R, K](a, b))
}

// FromInt embeds n into K by repeated doubling of K's one.
func FromInt[R any, K Ring[R]](n int64) R {
	var k K
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-(n + 1)) + 1
	}
	acc, base := k.Zero(), k.One()
	for u > 0 {
		if u&1 == 1 {
			acc = k.Add(acc, base)
		}
		u >>= 1
		if u > 0 {
			base = k.Add(base, base)
		}
	}
	if neg {
		return k.Neg(acc)
	}
	return acc
}

// Format renders r with K's Printer when available, falling back to fmt's
// default verb.
func Format[R any, K Ring[R]](r R) string {
	var k K
	if p, ok := any(k).(Printer[R]); ok {
		return p.Print(r)
	}
	return sprint(r)
}

// ZeroLiteral renders K's zero, or "0" when K cannot print itself.
func ZeroLiteral[R any, K Ring[R]]() string {
	var k K
	if p, ok := any(k).(Printer[R]); ok {
		return p.Print(k.Zero())
	}
	return "0"
}
