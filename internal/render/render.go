// Package render turns engine iteration into text. It only sees strings and
// flags, so it has no dependency on the engines themselves.
package render

import (
	"fmt"
	"slices"
	"strings"
)

// Term is one rendered coefficient/term pair of a sum.
type Term struct {
	Coef    string
	Term    string
	CoefOne bool // coefficient equals the ring's one
	Unit    bool // term equals the rule's unit
}

// Sum renders a linear combination. Pieces are sorted so that output does not
// depend on map iteration order.
func Sum(zero string, terms []Term, compact bool) string {
	if len(terms) == 0 {
		return zero
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		switch {
		case t.Unit:
			parts = append(parts, t.Coef)
		case t.CoefOne:
			parts = append(parts, t.Term)
		case compact:
			parts = append(parts, t.Coef+t.Term)
		default:
			parts = append(parts, t.Coef+"*"+t.Term)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	slices.Sort(parts)
	return "(" + strings.Join(parts, " + ") + ")"
}

// Word renders a letter sequence; the empty word is the identity "1".
func Word(letters []string, compact bool) string {
	if len(letters) == 0 {
		return "1"
	}
	if compact {
		return strings.Join(letters, "")
	}
	return strings.Join(letters, "*")
}

// Value renders v, forwarding the compact flag to values that implement
// fmt.Formatter.
func Value(v any, compact bool) string {
	if compact {
		if f, ok := v.(fmt.Formatter); ok {
			return fmt.Sprintf("%#v", f)
		}
	}
	return fmt.Sprint(v)
}

// Compact reports whether a formatting verb asked for compact output.
func Compact(f fmt.State, verb rune) bool {
	return f.Flag('#') && (verb == 'v' || verb == 's')
}
