// Package module implements free modules and algebras as linear combinations
// of terms with coefficients in a ring.
//
// An Element is parameterised by five types:
//
//	R  the coefficient type
//	T  the term type
//	K  the ring over R (see package ring)
//	H  the hasher over T (see package term)
//	A  the multiplication rule
//
// K, H and A are zero-size strategy types. They are never stored; every
// operation obtains them with a zero value.
//
// Storage keeps one invariant: no stored coefficient is zero. Absence of a
// term means a zero coefficient, and the number of stored terms is zero if and
// only if the element is the additive identity. The zero value of Element is
// that identity and is ready to use.
//
// Methods on *Element mutate the receiver and return it, so additions chain:
//
//	p := new(Element[float64, string, ring.Float64, term.Comparable[string], Free])
//	p.AddTerm(1, "x").AddTerm(2, "y")
//
// Package-level functions such as Mul, Pow and Commutator never mutate their
// arguments. They exist as functions rather than methods because they are
// gated on capabilities of the rule A: Mul needs A to implement Rule, Pow
// needs an associative rule with a unit. An element over the Free rule has no
// multiplication at all and calling Mul on it does not compile.
//
// Capability markers are trusted. Declaring Associative on a rule that is not
// associative makes Pow return a well-formed but algebraically wrong result.
package module
