package power

import (
	"math"
	"testing"
)

func TestSquare(t *testing.T) {
	calls := 0
	mul := func(a, b int) int {
		calls++
		return a * b
	}
	one := func() int { return 1 }

	tests := []struct {
		base int
		n    uint64
		want int
	}{
		{3, 0, 1},
		{3, 1, 3},
		{3, 2, 9},
		{2, 10, 1024},
		{-2, 5, -32},
	}
	for _, tt := range tests {
		if got := Square(tt.base, tt.n, one, mul); got != tt.want {
			t.Errorf("Square(%d, %d) = %d, want %d", tt.base, tt.n, got, tt.want)
		}
	}

	calls = 0
	Square(1, 1<<20, one, mul)
	if calls > 2*21 {
		t.Errorf("Square used %d multiplications for n=2^20", calls)
	}
}

func TestSquareNonCommutative(t *testing.T) {
	// String concatenation is associative but not commutative.
	got := Square("ab", 3, func() string { return "" }, func(a, b string) string { return a + b })
	if got != "ababab" {
		t.Errorf("got %q", got)
	}
}

func TestMagnitude(t *testing.T) {
	if got := Magnitude(-5); got != 5 {
		t.Errorf("Magnitude(-5) = %d", got)
	}
	if got := Magnitude(math.MinInt64); got != 1<<63 {
		t.Errorf("Magnitude(MinInt64) = %d", got)
	}
	if got := Magnitude(7); got != 7 {
		t.Errorf("Magnitude(7) = %d", got)
	}
}
