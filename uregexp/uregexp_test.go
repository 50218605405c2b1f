package uregexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeAndEquivalenceClassVectors(t *testing.T) {
	cases := []struct {
		in        rune
		canonical rune
		class     []rune
	}{
		{'!', '!', nil},
		{'s', 'S', []rune{'S', 's'}},
		{'S', 'S', []rune{'S', 's'}},
		{0x3C2, 0x3A3, []rune{0x3A3, 0x3C2, 0x3C3}}, // ς
		{0x3C3, 0x3A3, []rune{0x3A3, 0x3C2, 0x3C3}}, // σ
		{0x3A3, 0x3A3, []rune{0x3A3, 0x3C2, 0x3C3}}, // Σ
	}
	for _, c := range cases {
		assert.Equal(t, c.canonical, Canonicalize(c.in), "Canonicalize(%U)", c.in)
		assert.Equal(t, c.class, EquivalenceClass(c.in), "EquivalenceClass(%U)", c.in)
	}
}

// Canonical membership: every member of a class canonicalizes to the same
// code point.
func TestCanonicalMembership(t *testing.T) {
	for _, c := range []rune{'s', 'S', 0x3C2, 0x3C3, 0x3A3} {
		class := EquivalenceClass(c)
		if class == nil {
			continue
		}
		want := Canonicalize(c)
		for _, x := range class {
			assert.Equal(t, want, Canonicalize(x), "Canonicalize(%U) within class of %U", x, c)
		}
	}
}

// ASCII asymmetry: every member of an ASCII code point's class is itself ASCII.
func TestASCIIAsymmetry(t *testing.T) {
	for c := rune(0); c <= 0x7F; c++ {
		class := EquivalenceClass(c)
		for _, x := range class {
			assert.LessOrEqual(t, x, rune(0x7F), "EquivalenceClass(%U) contains non-ASCII %U", c, x)
		}
	}
}

// Canonical self-map: if Canonicalize(c) == c, either c has no class or c
// is a member of its own class.
func TestCanonicalSelfMap(t *testing.T) {
	for _, c := range []rune{'!', 'S', 0x3A3, 'Z', 'Q'} {
		if Canonicalize(c) != c {
			continue
		}
		class := EquivalenceClass(c)
		if class == nil {
			continue
		}
		assert.Contains(t, class, c)
	}
}
