package monoid

import "iter"

// Rule rewrites word·letter into canonical form. Apply owns word and may
// modify it in place; it must not retain letter slices it did not allocate.
type Rule[C any] interface {
	Apply(word []C, letter C) []C
}

// ManyRule is implemented by rules that can rewrite word·other in one step.
// Without it, other is folded through Apply letter by letter.
type ManyRule[C any] interface {
	Rule[C]
	ApplyMany(word, other []C) []C
}

// SeqRule is the streaming counterpart of ManyRule.
type SeqRule[C any] interface {
	Rule[C]
	ApplySeq(word []C, letters iter.Seq[C]) []C
}

// InvRule is a Rule whose letters have inverses: Apply(Apply(w, x), Invert(x))
// must be w.
type InvRule[C any] interface {
	Rule[C]
	Invert(letter C) C
}

// Associative marks a rule whose rewriting does not depend on grouping.
type Associative interface{ Associative() }

// Commutative marks a rule whose result does not depend on operand order.
type Commutative interface{ Commutative() }

// Distributive marks a rule that distributes over the rule A.
type Distributive[A any] interface{ DistributesOver(A) }

// AssociativeRule is the constraint used by Pow.
type AssociativeRule[C any] interface {
	Rule[C]
	Associative
}

// GroupRule is the constraint used by PowInt and the commutators.
type GroupRule[C any] interface {
	InvRule[C]
	Associative
}

// Capabilities lists the markers a rule type declares.
type Capabilities struct {
	Rewriting   bool
	Invertible  bool
	Associative bool
	Commutative bool
	BulkWord    bool
	BulkSeq     bool
}

// CapabilitiesOf inspects the rule type R for letters of type C.
func CapabilitiesOf[C any, R any]() Capabilities {
	var r R
	var c Capabilities
	_, c.Rewriting = any(r).(Rule[C])
	_, c.Invertible = any(r).(InvRule[C])
	_, c.Associative = any(r).(Associative)
	_, c.Commutative = any(r).(Commutative)
	_, c.BulkWord = any(r).(ManyRule[C])
	_, c.BulkSeq = any(r).(SeqRule[C])
	return c
}

// DistributesOver reports whether the rule M declares distributivity over A.
func DistributesOver[M, A any]() bool {
	var m M
	_, ok := any(m).(Distributive[A])
	return ok
}
