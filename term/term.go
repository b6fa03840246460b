// Package term provides the equality and hashing capability that lets a
// linear combination key its coefficients by arbitrary term types, including
// non-comparable ones such as words.
package term

import "hash/maphash"

// seed is shared by every Hasher in the process so that equal terms hash
// equally across elements. It is written once and only read afterwards.
var seed = maphash.MakeSeed()

// Seed returns the process-wide seed used by the hashers in this module.
func Seed() maphash.Seed { return seed }

// Hasher supplies hashing and equality for terms of type T. Equal terms must
// hash equally. Implementations are zero-size strategy types.
type Hasher[T any] interface {
	Hash(t T) uint64
	Equal(a, b T) bool
}

// Comparable hashes any comparable type with maphash.
type Comparable[T comparable] struct{}

func (Comparable[T]) Hash(t T) uint64 { return maphash.Comparable(seed, t) }

func (Comparable[T]) Equal(a, b T) bool { return a == b }

// Slice hashes a slice of comparable values element by element. It is the
// building block for sequence-like terms.
func Slice[C comparable](s []C) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, c := range s {
		maphash.WriteComparable(&h, c)
	}
	return h.Sum64()
}
