package unicase

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestToUpperConcreteVectors(t *testing.T) {
	cases := []struct{ in, want string }{
		{"foo", "FOO"},
		{"Schloß", "SCHLOSS"},
		{"", ""},
		{"\U00010400", "\U00010400"}, // Deseret LONG I: no upper mapping
		{"ŉ", "ʼN"},
		{"ᾳ", "ΑΙ"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToUpper(c.in), "ToUpper(%q)", c.in)
	}
}

func TestToLowerConcreteVectors(t *testing.T) {
	cases := []struct{ in, want string }{
		{"FOO", "foo"},
		{"Schloß", "schloß"},
		{"", ""},
		{"\U00010400", "\U00010428"},
		{"ŉ", "ŉ"},
		{"ᾳ", "ᾳ"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToLower(c.in), "ToLower(%q)", c.in)
	}
}

// Identity for unchanged input: returning the original string (not merely
// an equal copy) when no mapping fired.
func TestToUpperIdentityReturnsOriginal(t *testing.T) {
	s := "!!! 123 ---"
	got := ToUpper(s)
	assert.Equal(t, s, got)
	assert.True(t, unsafe.StringData(s) == unsafe.StringData(got), "ToUpper(%q) returned a copy", s)
}

// Idempotence: re-upper-casing an already-upper-cased result is a no-op,
// even when the first pass lengthened the string (ß -> SS).
func TestToUpperIdempotent(t *testing.T) {
	for _, s := range []string{"foo", "Schloß", "ᾳ", "ŉ"} {
		once := ToUpper(s)
		twice := ToUpper(once)
		assert.Equal(t, once, twice, "ToUpper(ToUpper(%q))", s)
	}
}

func TestToLowerIdempotent(t *testing.T) {
	for _, s := range []string{"FOO", "SCHLOSS", "\U00010400"} {
		once := ToLower(s)
		twice := ToLower(once)
		assert.Equal(t, once, twice, "ToLower(ToLower(%q))", s)
	}
}

// Concatenation composition: to_upper(p+s+a) == to_upper(p)+to_upper(s)+to_upper(a).
func TestToUpperComposition(t *testing.T) {
	affixes := []string{"", "a", "A", ".", "\U00010400"}
	fixtures := []string{"foo", "Schloß", "", "ŉ", "ᾳ"}

	for _, p := range affixes {
		for _, a := range affixes {
			for _, s := range fixtures {
				got := ToUpper(p + s + a)
				want := ToUpper(p) + ToUpper(s) + ToUpper(a)
				assert.Equal(t, want, got, "ToUpper(%q+%q+%q)", p, s, a)
			}
		}
	}
}

func TestToLowerComposition(t *testing.T) {
	affixes := []string{"", "a", "A", ".", "\U00010400"}
	fixtures := []string{"FOO", "SCHLOSS", "", "ŉ", "ᾳ"}

	for _, p := range affixes {
		for _, a := range affixes {
			for _, s := range fixtures {
				got := ToLower(p + s + a)
				want := ToLower(p) + ToLower(s) + ToLower(a)
				assert.Equal(t, want, got, "ToLower(%q+%q+%q)", p, s, a)
			}
		}
	}
}

// Malformed UTF-8 (an unpaired continuation byte) must pass through as
// identity rather than corrupting surrounding bytes.
func TestToUpperMalformedInputIsIdentity(t *testing.T) {
	bad := "a\xffb"
	assert.Equal(t, "A\xffB", ToUpper(bad))
}
