// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/comalice/freealg"
	"github.com/comalice/freealg/internal/scenario"
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
)

// GenPolynomial creates the dense polynomial 1 + 2x + ... + (n+1)x^n.
func GenPolynomial(n int) *freealg.Polynomial[int64, ring.Int] {
	if n < 0 {
		n = 0
	}
	p := freealg.NewPolynomial[int64, ring.Int]()
	for i := 0; i <= n; i++ {
		p.AddTerm(int64(i+1), int64(i))
	}
	return p
}

// GenAlgebra creates the sum of all n one-letter words over the letters
// a, b, c, ... with coefficient 1/(i+1).
func GenAlgebra(n int) *freealg.FreeAlgebra[*big.Rat, string, ring.Rat] {
	if n < 1 {
		n = 1
	}
	p := freealg.NewFreeAlgebra[*big.Rat, string, ring.Rat]()
	for i := 0; i < n; i++ {
		p.AddTerm(big.NewRat(1, int64(i+1)), freealg.Word(letter(i)))
	}
	return p
}

// GenGroupWord creates a reduced word of length n alternating x and y⁻¹.
func GenGroupWord(n int) *freealg.FreeGroup[string] {
	gens := make([]monoid.Gen[string], n)
	for i := range gens {
		if i%2 == 0 {
			gens[i] = monoid.Of("x")
		} else {
			gens[i] = monoid.InverseOf("y")
		}
	}
	return freealg.Group(gens...)
}

// GenScenarioYAML generates a group scenario of n mul steps followed by its
// inverse, so that the final element is the identity.
func GenScenarioYAML(n int) []byte {
	s := scenario.Scenario{
		Name: fmt.Sprintf("bench_%d", n),
		Kind: scenario.KindGroup,
	}
	for i := 0; i < n; i++ {
		s.Steps = append(s.Steps, scenario.Step{Op: "mul", Term: scenario.Letters{letter(i % 8), letter((i + 3) % 8)}})
	}
	s.Steps = append(s.Steps, scenario.Step{Op: "pow", Exp: 2})
	data, err := yaml.Marshal(s)
	if err != nil {
		panic(err)
	}
	return data
}

func letter(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return fmt.Sprintf("x%d", i)
}
