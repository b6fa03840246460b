package module

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/comalice/freealg/internal/render"
	"github.com/comalice/freealg/ring"
	"github.com/comalice/freealg/term"
)

// ErrTermNotFound is returned by At for terms with a zero coefficient.
var ErrTermNotFound = errors.New("module: term not found")

// Entry is one stored coefficient/term pair.
type Entry[R, T any] struct {
	Coef R
	Term T
}

// Element is a finite linear combination of terms T with coefficients R.
type Element[R, T any, K ring.Ring[R], H term.Hasher[T], A any] struct {
	buckets map[uint64][]Entry[R, T]
	n       int
}

// Zero returns an empty element.
func Zero[R, T any, K ring.Ring[R], H term.Hasher[T], A any]() *Element[R, T, K, H, A] {
	return &Element[R, T, K, H, A]{}
}

// FromTerm returns 1·t.
func FromTerm[R, T any, K ring.Ring[R], H term.Hasher[T], A any](t T) *Element[R, T, K, H, A] {
	var k K
	return FromPair[R, T, K, H, A](k.One(), t)
}

// FromPair returns r·t, which is the zero element when r is zero.
func FromPair[R, T any, K ring.Ring[R], H term.Hasher[T], A any](r R, t T) *Element[R, T, K, H, A] {
	e := &Element[R, T, K, H, A]{}
	e.insertTerm(r, t)
	return e
}

// FromTerms sums 1·t over terms. Repeated terms accumulate.
func FromTerms[R, T any, K ring.Ring[R], H term.Hasher[T], A any](terms iter.Seq[T]) *Element[R, T, K, H, A] {
	return (&Element[R, T, K, H, A]{}).ExtendTerms(terms)
}

// FromPairs sums r·t over pairs.
func FromPairs[R, T any, K ring.Ring[R], H term.Hasher[T], A any](pairs iter.Seq2[R, T]) *Element[R, T, K, H, A] {
	return (&Element[R, T, K, H, A]{}).Extend(pairs)
}

// Sum adds elems into a fresh element.
func Sum[R, T any, K ring.Ring[R], H term.Hasher[T], A any](elems ...*Element[R, T, K, H, A]) *Element[R, T, K, H, A] {
	e := &Element[R, T, K, H, A]{}
	for _, o := range elems {
		e.Add(o)
	}
	return e
}

// Len returns the number of terms with a nonzero coefficient.
func (e *Element[R, T, K, H, A]) Len() int {
	if e == nil {
		return 0
	}
	return e.n
}

// IsZero reports whether e is the additive identity.
func (e *Element[R, T, K, H, A]) IsZero() bool { return e.Len() == 0 }

func (e *Element[R, T, K, H, A]) find(t T) (*Entry[R, T], bool) {
	if e == nil {
		return nil, false
	}
	var h H
	b := e.buckets[h.Hash(t)]
	for i := range b {
		if h.Equal(b[i].Term, t) {
			return &b[i], true
		}
	}
	return nil, false
}

// Get returns the coefficient of t, or the ring's zero.
func (e *Element[R, T, K, H, A]) Get(t T) R {
	if en, ok := e.find(t); ok {
		return en.Coef
	}
	var k K
	return k.Zero()
}

// At is Get for callers that need to tell an absent term apart.
func (e *Element[R, T, K, H, A]) At(t T) (R, error) {
	if en, ok := e.find(t); ok {
		return en.Coef, nil
	}
	var zero R
	return zero, fmt.Errorf("%v: %w", t, ErrTermNotFound)
}

// Contains reports whether t has a nonzero coefficient.
func (e *Element[R, T, K, H, A]) Contains(t T) bool {
	_, ok := e.find(t)
	return ok
}

// All yields every coefficient/term pair in unspecified order.
func (e *Element[R, T, K, H, A]) All() iter.Seq2[R, T] {
	return func(yield func(R, T) bool) {
		if e == nil {
			return
		}
		for _, b := range e.buckets {
			for _, en := range b {
				if !yield(en.Coef, en.Term) {
					return
				}
			}
		}
	}
}

// Terms yields every stored term.
func (e *Element[R, T, K, H, A]) Terms() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range e.All() {
			if !yield(t) {
				return
			}
		}
	}
}

// Mutate yields every entry for modification in place. Entries are moved out
// of e before the first yield; each one is merged back after the loop body
// returns, so a term changed to collide with another accumulates and a
// coefficient set to zero disappears. Breaking early, or panicking, merges
// back the remaining entries untouched.
//
// The loop body must not use e except through the yielded entry.
func (e *Element[R, T, K, H, A]) Mutate() iter.Seq[*Entry[R, T]] {
	return func(yield func(*Entry[R, T]) bool) {
		staged := e.drain()
		i := 0
		defer func() {
			for ; i < len(staged); i++ {
				e.insertTerm(staged[i].Coef, staged[i].Term)
			}
		}()
		for i < len(staged) {
			more := yield(&staged[i])
			e.insertTerm(staged[i].Coef, staged[i].Term)
			i++
			if !more {
				return
			}
		}
	}
}

func (e *Element[R, T, K, H, A]) drain() []Entry[R, T] {
	staged := make([]Entry[R, T], 0, e.n)
	for _, b := range e.buckets {
		staged = append(staged, b...)
	}
	clear(e.buckets)
	e.n = 0
	return staged
}

// insertTerm merges r·t into e. A zero r is ignored, and a sum that reaches
// zero removes the term.
func (e *Element[R, T, K, H, A]) insertTerm(r R, t T) {
	var k K
	if k.IsZero(r) {
		return
	}
	var h H
	key := h.Hash(t)
	b := e.buckets[key]
	for i := range b {
		if !h.Equal(b[i].Term, t) {
			continue
		}
		sum := k.Add(b[i].Coef, r)
		if !k.IsZero(sum) {
			b[i].Coef = sum
			return
		}
		if b = slices.Delete(b, i, i+1); len(b) == 0 {
			delete(e.buckets, key)
		} else {
			e.buckets[key] = b
		}
		e.n--
		return
	}
	if e.buckets == nil {
		e.buckets = make(map[uint64][]Entry[R, T])
	}
	e.buckets[key] = append(b, Entry[R, T]{Coef: r, Term: t})
	e.n++
}

// AddTerm adds r·t to e.
func (e *Element[R, T, K, H, A]) AddTerm(r R, t T) *Element[R, T, K, H, A] {
	e.insertTerm(r, t)
	return e
}

// SubTerm subtracts r·t from e.
func (e *Element[R, T, K, H, A]) SubTerm(r R, t T) *Element[R, T, K, H, A] {
	var k K
	e.insertTerm(k.Neg(r), t)
	return e
}

// Add adds o to e. o may be e itself.
func (e *Element[R, T, K, H, A]) Add(o *Element[R, T, K, H, A]) *Element[R, T, K, H, A] {
	if e == o {
		o = o.Clone()
	}
	for r, t := range o.All() {
		e.insertTerm(r, t)
	}
	return e
}

// Sub subtracts o from e. o may be e itself.
func (e *Element[R, T, K, H, A]) Sub(o *Element[R, T, K, H, A]) *Element[R, T, K, H, A] {
	if e == o {
		o = o.Clone()
	}
	var k K
	for r, t := range o.All() {
		e.insertTerm(k.Neg(r), t)
	}
	return e
}

// Extend adds every pair in seq.
func (e *Element[R, T, K, H, A]) Extend(seq iter.Seq2[R, T]) *Element[R, T, K, H, A] {
	for r, t := range seq {
		e.insertTerm(r, t)
	}
	return e
}

// ExtendTerms adds 1·t for every t in seq.
func (e *Element[R, T, K, H, A]) ExtendTerms(seq iter.Seq[T]) *Element[R, T, K, H, A] {
	var k K
	for t := range seq {
		e.insertTerm(k.One(), t)
	}
	return e
}

// Scale multiplies every coefficient by r on the right.
func (e *Element[R, T, K, H, A]) Scale(r R) *Element[R, T, K, H, A] {
	var k K
	return e.apply(func(c R) R { return k.Mul(c, r) })
}

// DivScalar divides every coefficient by r. Division by zero is the ring's
// concern.
func (e *Element[R, T, K, H, A]) DivScalar(r R) *Element[R, T, K, H, A] {
	var k K
	return e.apply(func(c R) R { return k.Div(c, r) })
}

// Neg negates e in place.
func (e *Element[R, T, K, H, A]) Neg() *Element[R, T, K, H, A] {
	var k K
	return e.apply(k.Neg)
}

// apply maps every coefficient through f and drops the ones that become zero.
// Terms are untouched, so no merging is needed.
func (e *Element[R, T, K, H, A]) apply(f func(R) R) *Element[R, T, K, H, A] {
	var k K
	for key, b := range e.buckets {
		kept := b[:0]
		for _, en := range b {
			if en.Coef = f(en.Coef); !k.IsZero(en.Coef) {
				kept = append(kept, en)
			}
		}
		e.n -= len(b) - len(kept)
		if len(kept) == 0 {
			delete(e.buckets, key)
		} else {
			e.buckets[key] = kept
		}
	}
	return e
}

// Clone returns an independent copy of e. Terms themselves are shared.
func (e *Element[R, T, K, H, A]) Clone() *Element[R, T, K, H, A] {
	c := &Element[R, T, K, H, A]{n: e.Len()}
	if e.Len() == 0 {
		return c
	}
	c.buckets = make(map[uint64][]Entry[R, T], len(e.buckets))
	for key, b := range e.buckets {
		c.buckets[key] = slices.Clone(b)
	}
	return c
}

// Equal reports whether e and o have the same coefficient on every term.
func (e *Element[R, T, K, H, A]) Equal(o *Element[R, T, K, H, A]) bool {
	if e.Len() != o.Len() {
		return false
	}
	for r, t := range e.All() {
		en, ok := o.find(t)
		if !ok || !ring.Equal[R, K](r, en.Coef) {
			return false
		}
	}
	return true
}

func (e *Element[R, T, K, H, A]) String() string { return e.render(false) }

// Format implements fmt.Formatter. The '#' flag juxtaposes coefficients and
// terms instead of joining them with '*'.
func (e *Element[R, T, K, H, A]) Format(f fmt.State, verb rune) {
	io.WriteString(f, e.render(render.Compact(f, verb)))
}

func (e *Element[R, T, K, H, A]) render(compact bool) string {
	var k K
	var a A
	unit, unital := any(a).(Unital[T])
	terms := make([]render.Term, 0, e.Len())
	for r, t := range e.All() {
		terms = append(terms, render.Term{
			Coef:    ring.Format[R, K](r),
			Term:    render.Value(t, compact),
			CoefOne: k.IsOne(r),
			Unit:    unital && unit.IsOne(t),
		})
	}
	return render.Sum(ring.ZeroLiteral[R, K](), terms, compact)
}
