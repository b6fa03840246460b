package render

import (
	"fmt"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name    string
		terms   []Term
		compact bool
		want    string
	}{
		{"zero", nil, false, "0"},
		{"bare", []Term{{Coef: "2", Term: "x"}}, false, "2*x"},
		{"coef one", []Term{{Coef: "1", Term: "x", CoefOne: true}}, false, "x"},
		{"unit", []Term{{Coef: "3.5", Term: "1", Unit: true}}, false, "3.5"},
		{"unit one", []Term{{Coef: "1", Term: "1", Unit: true, CoefOne: true}}, false, "1"},
		{"compact", []Term{{Coef: "3.5", Term: "y"}}, true, "3.5y"},
		{
			"sorted sum",
			[]Term{{Coef: "1", Term: "x*y", CoefOne: true}, {Coef: "3.5", Term: "y"}},
			false,
			"(3.5*y + x*y)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum("0", tt.terms, tt.compact); got != tt.want {
				t.Errorf("Sum() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWord(t *testing.T) {
	if got := Word(nil, false); got != "1" {
		t.Errorf("empty word = %q", got)
	}
	if got := Word([]string{"x", "y"}, false); got != "x*y" {
		t.Errorf("got %q", got)
	}
	if got := Word([]string{"x", "y"}, true); got != "xy" {
		t.Errorf("compact got %q", got)
	}
}

type flagged struct{}

func (flagged) Format(f fmt.State, verb rune) {
	if Compact(f, verb) {
		fmt.Fprint(f, "compact")
		return
	}
	fmt.Fprint(f, "plain")
}

func TestValue(t *testing.T) {
	if got := Value(flagged{}, true); got != "compact" {
		t.Errorf("Value(compact) = %q", got)
	}
	if got := Value(flagged{}, false); got != "plain" {
		t.Errorf("Value(plain) = %q", got)
	}
	if got := Value("x", true); got != "x" {
		t.Errorf("Value(string) = %q", got)
	}
}
