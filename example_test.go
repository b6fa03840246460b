package freealg_test

import (
	"fmt"

	"github.com/comalice/freealg"
	"github.com/comalice/freealg/module"
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
)

func ExampleFreeModule() {
	p := freealg.NewFreeModule[float64, string, ring.Float64]()
	p.AddTerm(1, "x").AddTerm(2, "y").AddTerm(2, "x")
	fmt.Println(p)
	fmt.Println(p.Clone().Neg())
	// Output:
	// (2*y + 3*x)
	// (-2*y + -3*x)
}

func ExampleGroup() {
	x, y := monoid.Of("x"), monoid.Of("y")
	g := freealg.Group(x, y)
	fmt.Println(monoid.Commutator(g, freealg.Group(x)))
	fmt.Println(monoid.PowInt(g, -2))
	// Output:
	// y⁻¹*x⁻¹*y*x
	// y⁻¹*x⁻¹*y⁻¹*x⁻¹
}

func ExampleFreeAlgebra() {
	x := module.FromTerm[int64, *freealg.FreeMonoid[string], ring.Int, monoid.Hasher[string, monoid.Concat[string], monoid.Concat[string]], module.WordRule[int64, string, monoid.Concat[string], monoid.Concat[string]]](freealg.Word("x"))
	y := freealg.NewFreeAlgebra[int64, string, ring.Int]().AddTerm(1, freealg.Word("y"))
	fmt.Printf("%v\n", module.Commutator(x, y))
	fmt.Printf("%#v\n", module.Pow(module.Sum(x, y), 2))
	// Output:
	// (-1*y*x + x*y)
	// (xx + xy + yx + yy)
}
