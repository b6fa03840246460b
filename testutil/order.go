// Package testutil holds helpers shared by the engine test suites.
package testutil

import (
	"iter"
	"math/rand/v2"
	"slices"
)

// Orderer provides a common interface for exhaustive and sampled orderings of
// n items. This allows the same order-independence check to run on small
// inputs exhaustively and on larger ones by sampling.
type Orderer interface {
	Orders(n int) iter.Seq[[]int]
}

// Exhaustive yields every permutation of 0..n-1 (Heap's algorithm). Use it
// only for small n.
type Exhaustive struct{}

func (Exhaustive) Orders(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := identity(n)
		c := make([]int, n)
		if !yield(slices.Clone(p)) {
			return
		}
		for i := 1; i < n; {
			if c[i] < i {
				if i%2 == 0 {
					p[0], p[i] = p[i], p[0]
				} else {
					p[c[i]], p[i] = p[i], p[c[i]]
				}
				if !yield(slices.Clone(p)) {
					return
				}
				c[i]++
				i = 1
			} else {
				c[i] = 0
				i++
			}
		}
	}
}

// Shuffled yields Count random permutations drawn from a PCG source seeded
// with Seed, so failures are reproducible.
type Shuffled struct {
	Seed  uint64
	Count int
}

func (s Shuffled) Orders(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		r := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
		for range s.Count {
			p := identity(n)
			r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
			if !yield(p) {
				return
			}
		}
	}
}

// Reorder returns items arranged by order.
func Reorder[E any](items []E, order []int) []E {
	out := make([]E, len(order))
	for i, j := range order {
		out[i] = items[j]
	}
	return out
}

// Orderings yields items in every order produced by o.
func Orderings[E any](o Orderer, items []E) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		for order := range o.Orders(len(items)) {
			if !yield(Reorder(items, order)) {
				return
			}
		}
	}
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
