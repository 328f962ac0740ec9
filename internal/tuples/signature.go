package tuples

import (
	"fmt"
	"strings"
)

// Param is one declared parameter with its type marker.
type Param struct {
	Name string
	Type string
}

// Signature records a function's declared parameter and return type
// markers in declaration order. It is the queryable form of a function's
// annotation map.
type Signature struct {
	Params []Param
	Return string
}

// Annotations returns the signature as a name-to-marker map: one entry
// per parameter plus "return".
func (s Signature) Annotations() map[string]string {
	m := make(map[string]string, len(s.Params)+1)
	for _, p := range s.Params {
		m[p.Name] = p.Type
	}
	m["return"] = s.Return
	return m
}

// String renders the annotation map in declaration order with the return
// marker last, e.g. "{a: int, b: int, c: int, return: tuple}".
func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, p := range s.Params {
		fmt.Fprintf(&sb, "%s: %s, ", p.Name, p.Type)
	}
	fmt.Fprintf(&sb, "return: %s}", s.Return)
	return sb.String()
}

// signatures is the side-table of declared signatures, populated at
// definition time and read-only afterwards.
var signatures = map[string]Signature{
	"BuildTriple": {
		Params: []Param{{"a", "int"}, {"b", "int"}, {"c", "int"}},
		Return: "tuple",
	},
}

// SignatureOf returns the declared signature recorded for the named
// function. ok is false when no signature is recorded.
func SignatureOf(name string) (Signature, bool) {
	sig, ok := signatures[name]
	return sig, ok
}
