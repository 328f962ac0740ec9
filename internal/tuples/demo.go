package tuples

import (
	"fmt"
	"io"
)

// Demo runs the tuple construction demonstration once: it builds a triple
// from a, b and c, prints it, then prints BuildTriple's declared
// annotations from the signature side-table.
func Demo(w io.Writer, a, b, c int) Triple {
	t := BuildTriple(a, b, c)
	fmt.Fprintf(w, "A tuple of int:  %s\n", t)

	sig, ok := SignatureOf("BuildTriple")
	if ok {
		fmt.Fprintf(w, "Type annotations of the BuildTriple function:\n %s\n", sig)
	}
	return t
}
