// Package monoid implements free monoids and groups as words: ordered letter
// sequences kept in canonical form by a pluggable rewriting Rule.
//
// # Rules
//
// A Word carries two rule slots chosen at compile time, an additive rule A
// (used by Add/Sub/Neg) and a multiplicative rule M (used by Mul/Div/Inv). The
// two are never applied in the same operation. A slot can be disabled with
// None, in which case every operation needing it fails to compile:
//
//	type FreeGroup = monoid.Word[monoid.Gen[string], monoid.None, monoid.Cancel[string]]
//
//	w := monoid.Mul(monoid.Letter[monoid.Gen[string], monoid.None, monoid.Cancel[string]](monoid.Of("x")),
//		monoid.Letter[monoid.Gen[string], monoid.None, monoid.Cancel[string]](monoid.InverseOf("x")))
//	// w is the empty word
//
// Every rewrite funnels through Rule.Apply, which receives the current word
// and one letter and returns the new word. Rules may additionally implement
// ManyRule or SeqRule to rewrite whole words or streams in one call.
//
// # Capabilities
//
// Associative, Commutative and Distributive are zero-data markers; InvRule
// adds letter inversion. Operations that rely on a capability (Pow,
// Commutator, Inv, ...) constrain the rule type accordingly. The markers are
// trusted: declaring Associative on a rule that is not yields wrong words, not
// a panic.
//
// # Values
//
// Package-level functions never modify their arguments. Words are safe to
// share between goroutines as long as nobody holds on to the slices passed to
// a Rule.
package monoid
