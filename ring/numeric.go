package ring

import (
	"fmt"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"
)

func sprint(v any) string { return fmt.Sprint(v) }

// Float64 is the field of IEEE-754 doubles. Zero tests are exact.
type Float64 struct{}

func (Float64) Zero() float64 { return 0 }
func (Float64) One() float64 { return 1 }
func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Neg(a float64) float64 { return -a }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }
func (Float64) IsZero(a float64) bool { return a == 0 }
func (Float64) IsOne(a float64) bool { return a == 1 }
func (Float64) Print(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
func (Float64) Parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("float64 %q: %w", s, ErrParse)
	}
	return f, nil
}

// Int is the ring of int64 values with wrapping overflow. Div truncates and
// panics on a zero divisor, like the built-in operator.
type Int struct{}

func (Int) Zero() int64 { return 0 }
func (Int) One() int64 { return 1 }
func (Int) Add(a, b int64) int64 { return a + b }
func (Int) Neg(a int64) int64 { return -a }
func (Int) Mul(a, b int64) int64 { return a * b }
func (Int) Div(a, b int64) int64 { return a / b }
func (Int) IsZero(a int64) bool { return a == 0 }
func (Int) IsOne(a int64) bool { return a == 1 }
func (Int) Print(a int64) string { return strconv.FormatInt(a, 10) }
func (Int) Parse(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("int %q: %w", s, ErrParse)
	}
	return n, nil
}

// Rat is the field of exact rationals. Values are treated as immutable: every
// operation allocates a fresh *big.Rat. A nil *big.Rat reads as zero.
type Rat struct{}

func rat(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}
	return a
}

func (Rat) Zero() *big.Rat { return new(big.Rat) }
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(rat(a), rat(b)) }
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(rat(a)) }
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(rat(a), rat(b)) }
func (Rat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(rat(a), rat(b)) }
func (Rat) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }
func (Rat) IsOne(a *big.Rat) bool { return a != nil && a.Cmp(big.NewRat(1, 1)) == 0 }
func (Rat) Print(a *big.Rat) string { return rat(a).RatString() }
func (Rat) Parse(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("rat %q: %w", s, ErrParse)
	}
	return r, nil
}

// Complex128 is the field of complex doubles.
type Complex128 struct{}

func (Complex128) Zero() complex128 { return 0 }
func (Complex128) One() complex128 { return 1 }
func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Neg(a complex128) complex128 { return -a }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }
func (Complex128) Div(a, b complex128) complex128 { return a / b }
func (Complex128) IsZero(a complex128) bool { return a == 0 }
func (Complex128) IsOne(a complex128) bool { return a == 1 }
func (Complex128) Print(a complex128) string {
	if imag(a) == 0 {
		return strconv.FormatFloat(real(a), 'g', -1, 64)
	}
	return strconv.FormatComplex(a, 'g', -1, 128)
}
func (Complex128) Parse(s string) (complex128, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil || cmplx.IsNaN(c) {
		return 0, fmt.Errorf("complex128 %q: %w", s, ErrParse)
	}
	return c, nil
}
