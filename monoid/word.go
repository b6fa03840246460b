package monoid

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/comalice/freealg/internal/render"
	"github.com/comalice/freealg/term"
)

// ErrOutOfRange is returned by positional lookups outside the word.
var ErrOutOfRange = errors.New("monoid: index out of range")

// Word is an element of a free monoid over letters C, with additive rule A and
// multiplicative rule M. A nil *Word is the empty word.
type Word[C comparable, A, M any] struct {
	letters []C
}

// Letter returns the one-letter word c. No rule is consulted.
func Letter[C comparable, A, M any](c C) *Word[C, A, M] {
	return &Word[C, A, M]{letters: []C{c}}
}

func (w *Word[C, A, M]) view() []C {
	if w == nil {
		return nil
	}
	return w.letters
}

// Len returns the number of letters.
func (w *Word[C, A, M]) Len() int { return len(w.view()) }

// IsEmpty reports whether w is the identity word.
func (w *Word[C, A, M]) IsEmpty() bool { return w.Len() == 0 }

// At returns the i-th letter.
func (w *Word[C, A, M]) At(i int) (C, error) {
	l := w.view()
	if i < 0 || i >= len(l) {
		var zero C
		return zero, fmt.Errorf("letter %d of %d: %w", i, len(l), ErrOutOfRange)
	}
	return l[i], nil
}

// Slice returns a copy of the letters in [i, j).
func (w *Word[C, A, M]) Slice(i, j int) ([]C, error) {
	l := w.view()
	if i < 0 || j < i || j > len(l) {
		return nil, fmt.Errorf("letters [%d:%d] of %d: %w", i, j, len(l), ErrOutOfRange)
	}
	return slices.Clone(l[i:j]), nil
}

// Letters returns a copy of the letter sequence.
func (w *Word[C, A, M]) Letters() []C { return slices.Clone(w.view()) }

// All iterates over positions and letters in order.
func (w *Word[C, A, M]) All() iter.Seq2[int, C] {
	return slices.All(w.view())
}

// Equal reports sequence equality.
func (w *Word[C, A, M]) Equal(other *Word[C, A, M]) bool {
	return slices.Equal(w.view(), other.view())
}

// Clone returns an independent copy of w.
func (w *Word[C, A, M]) Clone() *Word[C, A, M] {
	return &Word[C, A, M]{letters: slices.Clone(w.view())}
}

func (w *Word[C, A, M]) String() string { return w.render(false) }

// Format implements fmt.Formatter. The '#' flag juxtaposes letters instead of
// joining them with '*'.
func (w *Word[C, A, M]) Format(f fmt.State, verb rune) {
	io.WriteString(f, w.render(render.Compact(f, verb)))
}

func (w *Word[C, A, M]) render(compact bool) string {
	letters := make([]string, 0, w.Len())
	for _, c := range w.view() {
		letters = append(letters, render.Value(c, compact))
	}
	return render.Word(letters, compact)
}

// appendLetter is the single rewriting point for one letter: the slice is
// detached before the rule sees it so the rule owns it outright.
func (w *Word[C, A, M]) appendLetter(rule Rule[C], c C) {
	tmp := w.letters
	w.letters = nil
	w.letters = rule.Apply(tmp, c)
}

func (w *Word[C, A, M]) appendWord(rule Rule[C], other []C) {
	tmp := w.letters
	w.letters = nil
	if m, ok := rule.(ManyRule[C]); ok {
		w.letters = m.ApplyMany(tmp, other)
		return
	}
	for _, c := range other {
		tmp = rule.Apply(tmp, c)
	}
	w.letters = tmp
}

func (w *Word[C, A, M]) appendSeq(rule Rule[C], letters iter.Seq[C]) {
	tmp := w.letters
	w.letters = nil
	if s, ok := rule.(SeqRule[C]); ok {
		w.letters = s.ApplySeq(tmp, letters)
		return
	}
	for c := range letters {
		tmp = rule.Apply(tmp, c)
	}
	w.letters = tmp
}

// invert replaces w with its inverse. Reversing and inverting letters is not
// enough on its own: the result is re-run through the rule so it lands in
// canonical form.
func (w *Word[C, A, M]) invert(rule InvRule[C]) {
	tmp := w.letters
	w.letters = nil
	reversed := func(yield func(C) bool) {
		for i := len(tmp) - 1; i >= 0; i-- {
			if !yield(rule.Invert(tmp[i])) {
				return
			}
		}
	}
	w.appendSeq(rule, reversed)
}

// Hasher lets words serve as terms of a module.Element.
type Hasher[C comparable, A, M any] struct{}

func (Hasher[C, A, M]) Hash(w *Word[C, A, M]) uint64 { return term.Slice(w.view()) }

func (Hasher[C, A, M]) Equal(a, b *Word[C, A, M]) bool { return a.Equal(b) }
