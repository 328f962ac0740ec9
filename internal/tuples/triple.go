// Package tuples provides the fixed-size tuple construction demo and the
// declared-signature side-table it introspects.
package tuples

import "fmt"

// Triple is an ordered, immutable sequence of exactly three integers.
type Triple [3]int

// BuildTriple constructs a Triple containing a, b and c in that order.
// Inputs are unconstrained; no validation is performed.
func BuildTriple(a, b, c int) Triple {
	return Triple{a, b, c}
}

// String renders the triple in tuple notation, e.g. "(4, 7, -5)".
func (t Triple) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t[0], t[1], t[2])
}

// Len reports the number of elements. Always 3.
func (t Triple) Len() int {
	return len(t)
}
