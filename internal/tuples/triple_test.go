package tuples

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTriple(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int
		want    Triple
	}{
		{"demo values", 4, 7, -5, Triple{4, 7, -5}},
		{"zeros", 0, 0, 0, Triple{0, 0, 0}},
		{"negative values", -1, -2, -3, Triple{-1, -2, -3}},
		{"order preserved", 3, 1, 2, Triple{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTriple(tt.a, tt.b, tt.c)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 3, got.Len())
		})
	}
}

func TestTripleString(t *testing.T) {
	assert.Equal(t, "(4, 7, -5)", BuildTriple(4, 7, -5).String())
	assert.Equal(t, "(0, 0, 0)", BuildTriple(0, 0, 0).String())
}

func TestSignatureOf_BuildTriple(t *testing.T) {
	sig, ok := SignatureOf("BuildTriple")
	require.True(t, ok, "BuildTriple signature should be recorded")

	annotations := sig.Annotations()
	assert.Equal(t, map[string]string{
		"a":      "int",
		"b":      "int",
		"c":      "int",
		"return": "tuple",
	}, annotations)
}

func TestSignatureOf_Unknown(t *testing.T) {
	_, ok := SignatureOf("NoSuchFunction")
	assert.False(t, ok)
}

func TestSignatureString(t *testing.T) {
	sig, _ := SignatureOf("BuildTriple")
	assert.Equal(t, "{a: int, b: int, c: int, return: tuple}", sig.String())
}

func TestDemo_OutputAndRepeatability(t *testing.T) {
	var first, second bytes.Buffer

	got := Demo(&first, 4, 7, -5)
	Demo(&second, 4, 7, -5)

	assert.Equal(t, Triple{4, 7, -5}, got)
	assert.Contains(t, first.String(), "(4, 7, -5)")
	assert.Contains(t, first.String(), "{a: int, b: int, c: int, return: tuple}")

	// Two identical runs print identical output.
	assert.Equal(t, first.String(), second.String())
}
