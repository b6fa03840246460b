// Package power holds the exponentiation shared by the module and monoid
// engines.
package power

// Square raises base to the n-th power by repeated squaring, using
// O(log n) calls to mul. Only associativity of mul is assumed; operand order
// within each call never matters for the result.
//
// one must return a fresh identity, and mul must not mutate its arguments.
func Square[E any](base E, n uint64, one func() E, mul func(a, b E) E) E {
	result := one()
	for n > 0 {
		if n&1 == 1 {
			result = mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = mul(base, base)
		}
	}
	return result
}

// Magnitude returns |n| as a uint64 without overflowing on math.MinInt64.
func Magnitude(n int64) uint64 {
	if n >= 0 {
		return uint64(n)
	}
	return uint64(-(n + 1)) + 1
}
