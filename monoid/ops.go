package monoid

import (
	"iter"
	"slices"

	"github.com/comalice/freealg/internal/power"
)

// Zero returns the additive identity, the empty word.
func Zero[C comparable, A Rule[C], M any]() *Word[C, A, M] { return &Word[C, A, M]{} }

// One returns the multiplicative identity, the empty word.
func One[C comparable, A any, M Rule[C]]() *Word[C, A, M] { return &Word[C, A, M]{} }

// Sum folds letters into the empty word with the additive rule.
func Sum[C comparable, A Rule[C], M any](letters ...C) *Word[C, A, M] {
	return SumSeq[C, A, M](slices.Values(letters))
}

// SumSeq is Sum over a stream of letters.
func SumSeq[C comparable, A Rule[C], M any](letters iter.Seq[C]) *Word[C, A, M] {
	var a A
	w := &Word[C, A, M]{}
	w.appendSeq(a, letters)
	return w
}

// SumOf adds words left to right.
func SumOf[C comparable, A Rule[C], M any](words ...*Word[C, A, M]) *Word[C, A, M] {
	var a A
	w := &Word[C, A, M]{}
	for _, o := range words {
		w.appendWord(a, o.view())
	}
	return w
}

// Product folds letters into the empty word with the multiplicative rule.
func Product[C comparable, A any, M Rule[C]](letters ...C) *Word[C, A, M] {
	return ProductSeq[C, A, M](slices.Values(letters))
}

// ProductSeq is Product over a stream of letters.
func ProductSeq[C comparable, A any, M Rule[C]](letters iter.Seq[C]) *Word[C, A, M] {
	var m M
	w := &Word[C, A, M]{}
	w.appendSeq(m, letters)
	return w
}

// ProductOf multiplies words left to right.
func ProductOf[C comparable, A any, M Rule[C]](words ...*Word[C, A, M]) *Word[C, A, M] {
	var m M
	w := &Word[C, A, M]{}
	for _, o := range words {
		w.appendWord(m, o.view())
	}
	return w
}

// Add returns a+b under the additive rule.
func Add[C comparable, A Rule[C], M any](a, b *Word[C, A, M]) *Word[C, A, M] {
	var r A
	w := a.Clone()
	w.appendWord(r, b.view())
	return w
}

// AddLetter returns a+c.
func AddLetter[C comparable, A Rule[C], M any](a *Word[C, A, M], c C) *Word[C, A, M] {
	var r A
	w := a.Clone()
	w.appendLetter(r, c)
	return w
}

// AddSeq appends a stream of letters under the additive rule.
func AddSeq[C comparable, A Rule[C], M any](a *Word[C, A, M], letters iter.Seq[C]) *Word[C, A, M] {
	var r A
	w := a.Clone()
	w.appendSeq(r, letters)
	return w
}

// Neg returns the additive inverse of a.
func Neg[C comparable, A InvRule[C], M any](a *Word[C, A, M]) *Word[C, A, M] {
	var r A
	w := a.Clone()
	w.invert(r)
	return w
}

// Sub returns a + (-b).
func Sub[C comparable, A InvRule[C], M any](a, b *Word[C, A, M]) *Word[C, A, M] {
	return Add(a, Neg(b))
}

// SubLetter returns a + (-c).
func SubLetter[C comparable, A InvRule[C], M any](a *Word[C, A, M], c C) *Word[C, A, M] {
	var r A
	return AddLetter(a, r.Invert(c))
}

// Mul returns a·b under the multiplicative rule.
func Mul[C comparable, A any, M Rule[C]](a, b *Word[C, A, M]) *Word[C, A, M] {
	var r M
	w := a.Clone()
	w.appendWord(r, b.view())
	return w
}

// MulLetter returns a·c.
func MulLetter[C comparable, A any, M Rule[C]](a *Word[C, A, M], c C) *Word[C, A, M] {
	var r M
	w := a.Clone()
	w.appendLetter(r, c)
	return w
}

// MulSeq appends a stream of letters under the multiplicative rule.
func MulSeq[C comparable, A any, M Rule[C]](a *Word[C, A, M], letters iter.Seq[C]) *Word[C, A, M] {
	var r M
	w := a.Clone()
	w.appendSeq(r, letters)
	return w
}

// Inv returns the multiplicative inverse of a.
func Inv[C comparable, A any, M InvRule[C]](a *Word[C, A, M]) *Word[C, A, M] {
	var r M
	w := a.Clone()
	w.invert(r)
	return w
}

// Div returns a·b⁻¹.
func Div[C comparable, A any, M InvRule[C]](a, b *Word[C, A, M]) *Word[C, A, M] {
	return Mul(a, Inv(b))
}

// DivLetter returns a·c⁻¹.
func DivLetter[C comparable, A any, M InvRule[C]](a *Word[C, A, M], c C) *Word[C, A, M] {
	var r M
	return MulLetter(a, r.Invert(c))
}

// Commutator returns a⁻¹b⁻¹ab.
func Commutator[C comparable, A any, M GroupRule[C]](a, b *Word[C, A, M]) *Word[C, A, M] {
	return ProductOf(Inv(a), Inv(b), a, b)
}

// AddCommutator returns -a-b+a+b.
func AddCommutator[C comparable, A GroupRule[C], M any](a, b *Word[C, A, M]) *Word[C, A, M] {
	return SumOf(Neg(a), Neg(b), a, b)
}

// Pow returns w multiplied by itself n times; Pow(w, 0) is the empty word.
func Pow[C comparable, A any, M AssociativeRule[C]](w *Word[C, A, M], n uint64) *Word[C, A, M] {
	return power.Square(w.Clone(), n, One[C, A, M], Mul[C, A, M])
}

// PowInt is Pow for rules with inverses; a negative n yields the inverse of
// w^|n|.
func PowInt[C comparable, A any, M GroupRule[C]](w *Word[C, A, M], n int64) *Word[C, A, M] {
	p := Pow(w, power.Magnitude(n))
	if n < 0 {
		return Inv(p)
	}
	return p
}
