package module

// Rule multiplies two terms. It returns the product term and, when ok is true,
// an extra coefficient that scales the product.
type Rule[R, T any] interface {
	Apply(t1, t2 T) (t T, coef R, ok bool)
}

// Associative marks a rule whose products do not depend on grouping.
type Associative interface{ Associative() }

// Commutative marks a rule whose products do not depend on operand order.
type Commutative interface{ Commutative() }

// Unital is implemented by rules with a unit term.
type Unital[T any] interface {
	One() T
	IsOne(t T) bool
}

// UnitalRule is the constraint used by Product.
type UnitalRule[R, T any] interface {
	Rule[R, T]
	Unital[T]
}

// UnitalAssociativeRule is the constraint used by Pow.
type UnitalAssociativeRule[R, T any] interface {
	Rule[R, T]
	Associative
	Unital[T]
}

// Capabilities lists the markers a rule type declares.
type Capabilities struct {
	Multiplicative bool
	Associative    bool
	Commutative    bool
	Unital         bool
}

// CapabilitiesOf inspects the rule type A for coefficients R and terms T.
func CapabilitiesOf[R, T, A any]() Capabilities {
	var a A
	var c Capabilities
	_, c.Multiplicative = any(a).(Rule[R, T])
	_, c.Associative = any(a).(Associative)
	_, c.Commutative = any(a).(Commutative)
	_, c.Unital = any(a).(Unital[T])
	return c
}
