package casepage

// shortString is a 1-to-3 code point output value stored inline, per the
// "short-string entries" design note: page entries for the upper/lower
// tables are never longer than 3 code points (the longest mapping this
// engine's tables encode is U+1FB3 -> "ΑΙ", 2 code points), so a heap
// string per entry would be pure allocation overhead.
type shortString struct {
	runes [3]rune
	n     uint8
}

// newShortString1 builds a single-code-point entry.
func newShortString1(r rune) shortString {
	return shortString{runes: [3]rune{r, 0, 0}, n: 1}
}

// append returns s with r appended. Panics if s already holds 3 runes;
// the tables never emit a fourth character.
func (s shortString) append(r rune) shortString {
	if s.n >= 3 {
		panic("casepage: short string overflow")
	}
	s.runes[s.n] = r
	s.n++
	return s
}

// String renders the entry as a Go string, allocating only at this point
// (never per code point during a bulk conversion).
func (s shortString) String() string {
	return string(s.runes[:s.n])
}
