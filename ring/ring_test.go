package ring

import (
	"errors"
	"math/big"
	"testing"
)

func TestFromInt(t *testing.T) {
	tests := []int64{0, 1, 2, 7, 64, -1, -13}
	for _, n := range tests {
		if got := FromInt[float64, Float64](n); got != float64(n) {
			t.Errorf("FromInt[Float64](%d) = %v", n, got)
		}
		if got := FromInt[int64, Int](n); got != n {
			t.Errorf("FromInt[Int](%d) = %v", n, got)
		}
		if got := FromInt[*big.Rat, Rat](n); got.Cmp(big.NewRat(n, 1)) != 0 {
			t.Errorf("FromInt[Rat](%d) = %v", n, got)
		}
	}
}

func TestSubAndEqual(t *testing.T) {
	if got := Sub[int64, Int](5, 7); got != -2 {
		t.Errorf("Sub = %d, want -2", got)
	}
	if !Equal[*big.Rat, Rat](big.NewRat(1, 2), big.NewRat(2, 4)) {
		t.Error("1/2 and 2/4 should be equal")
	}
	if Equal[float64, Float64](1, 1.5) {
		t.Error("1 and 1.5 should differ")
	}
}

func TestRatNilIsZero(t *testing.T) {
	var k Rat
	if !k.IsZero(nil) {
		t.Error("nil rat should be zero")
	}
	if got := k.Add(nil, big.NewRat(3, 4)); got.Cmp(big.NewRat(3, 4)) != 0 {
		t.Errorf("nil + 3/4 = %v", got)
	}
	if k.IsOne(nil) {
		t.Error("nil rat is not one")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"float", Format[float64, Float64](3.5), "3.5"},
		{"int", Format[int64, Int](-4), "-4"},
		{"rat", Format[*big.Rat, Rat](big.NewRat(6, 4)), "3/2"},
		{"rat integer", Format[*big.Rat, Rat](big.NewRat(4, 2)), "2"},
		{"complex real", Format[complex128, Complex128](2), "2"},
		{"complex", Format[complex128, Complex128](complex(1, 2)), "(1+2i)"},
		{"zero literal", ZeroLiteral[*big.Rat, Rat](), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

type bare struct{}

func (bare) Zero() int { return 0 }
func (bare) One() int { return 1 }
func (bare) Add(a, b int) int { return a + b }
func (bare) Neg(a int) int { return -a }
func (bare) Mul(a, b int) int { return a * b }
func (bare) Div(a, b int) int { return a / b }
func (bare) IsZero(a int) bool { return a == 0 }
func (bare) IsOne(a int) bool { return a == 1 }

func TestFormatFallback(t *testing.T) {
	if got := ZeroLiteral[int, bare](); got != "0" {
		t.Errorf("ZeroLiteral = %q", got)
	}
	if got := Format[int, bare](12); got != "12" {
		t.Errorf("Format = %q", got)
	}
}

func TestParse(t *testing.T) {
	if got, err := (Rat{}).Parse(" 1/3 "); err != nil || got.Cmp(big.NewRat(1, 3)) != 0 {
		t.Errorf("Parse(1/3) = %v, %v", got, err)
	}
	if _, err := (Int{}).Parse("1.5"); !errors.Is(err, ErrParse) {
		t.Errorf("Int.Parse(1.5) err = %v, want ErrParse", err)
	}
	if _, err := (Float64{}).Parse("x"); !errors.Is(err, ErrParse) {
		t.Errorf("Float64.Parse(x) err = %v, want ErrParse", err)
	}
	if got, err := (Complex128{}).Parse("1+2i"); err != nil || got != complex(1, 2) {
		t.Errorf("Complex128.Parse = %v, %v", got, err)
	}
}
