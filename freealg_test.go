package freealg

import (
	"fmt"
	"math/big"
	"slices"
	"testing"

	"github.com/comalice/freealg/module"
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
)

func TestWordScenario(t *testing.T) {
	concat := monoid.One[monoid.Gen[string], monoid.None, monoid.Concat[monoid.Gen[string]]]()
	for _, g := range []monoid.Gen[string]{monoid.Of("x"), monoid.Of("y"), monoid.InverseOf("x")} {
		concat = monoid.MulLetter(concat, g)
	}
	if got, want := concat.Letters(), []monoid.Gen[string]{monoid.Of("x"), monoid.Of("y"), monoid.InverseOf("x")}; !slices.Equal(got, want) {
		t.Errorf("concatenation = %v, want %v", got, want)
	}

	g := Group[string]()
	g = monoid.MulLetter(g, monoid.Of("x"))
	g = monoid.MulLetter(g, monoid.InverseOf("x"))
	if !g.IsEmpty() {
		t.Errorf("x·x⁻¹ = %v, want empty", g)
	}
}

func TestModuleScenario(t *testing.T) {
	p := NewFreeModule[float64, string, ring.Float64]()
	steps := []struct {
		coef float64
		want map[string]float64
	}{
		{1, map[string]float64{"x": 1}},
		{2, map[string]float64{"x": 3}},
		{-3, map[string]float64{}},
	}
	for i, s := range steps {
		p.AddTerm(s.coef, "x")
		if p.Len() != len(s.want) {
			t.Fatalf("step %d: len = %d, want %d", i, p.Len(), len(s.want))
		}
		for k, v := range s.want {
			if got := p.Get(k); got != v {
				t.Errorf("step %d: %s = %v, want %v", i, k, got, v)
			}
		}
	}
	if !p.Equal(NewFreeModule[float64, string, ring.Float64]()) {
		t.Error("result should equal zero")
	}
}

func TestPolynomial(t *testing.T) {
	p := Monomial[float64, ring.Float64](1, 1).Add(Monomial[float64, ring.Float64](-1, 0))
	q := Monomial[float64, ring.Float64](1, 1).Add(Monomial[float64, ring.Float64](1, 0))
	got := module.Mul(p, q)
	want := Monomial[float64, ring.Float64](1, 2).Add(Monomial[float64, ring.Float64](-1, 0))
	if !got.Equal(want) {
		t.Errorf("(x-1)(x+1) = %v, want %v", got, want)
	}
	if NewPolynomial[float64, ring.Float64]().Len() != 0 {
		t.Error("new polynomial is not zero")
	}
}

func TestFreeAlgebra(t *testing.T) {
	p := NewFreeAlgebra[*big.Rat, string, ring.Rat]()
	p.AddTerm(big.NewRat(1, 1), Word("x"))
	p.AddTerm(big.NewRat(1, 2), Word[string]())

	if got := module.Pow(p, 2).String(); got != "(1/4 + x + x*x)" {
		t.Errorf("(x + 1/2)^2 = %q", got)
	}
	if got := fmt.Sprint(p); got != "(1/2 + x)" {
		t.Errorf("p = %q", got)
	}
}

func TestPowWord(t *testing.T) {
	w := PowWord(monoid.ExpOf("x", 2), monoid.ExpOf("x", 3), monoid.ExpOf("y", -1))
	if got := w.String(); got != "x^5*y^-1" {
		t.Errorf("String() = %q", got)
	}
	if p := monoid.Mul(w, monoid.Inv(w)); !p.IsEmpty() {
		t.Errorf("w·w⁻¹ = %v", p)
	}
	a := monoid.Add(w, w)
	if got := a.Len(); got != 4 {
		t.Errorf("w+w has %d letters, want 4", got)
	}
}
