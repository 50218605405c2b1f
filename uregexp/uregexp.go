// Package uregexp implements the engine's two regex-support operations:
// Canonicalize (ECMAScript 5 case-independent matching's canonical form)
// and EquivalenceClass (every code point that canonical form covers).
package uregexp

import "github.com/bdwalton/uncase/casepage"

var (
	canonicalCache = casepage.NewCache[*casepage.CodepointPage]("regex-canonical")
	classCache     = casepage.NewCache[*casepage.ClassPage]("regex-equivalence-class")
)

// Canonicalize returns c's upper-case canonical form for case-independent
// regex matching, or c itself if the regex-canonical table has no entry
// for it.
func Canonicalize(c rune) rune {
	cp := int32(c)
	page := canonicalCache.Page(cp, func(idx int32) *casepage.CodepointPage {
		return casepage.BuildCanonicalPage(idx)
	})
	if page == nil {
		return c
	}
	to, ok := page.Lookup(uint8(cp & 0xFF))
	if !ok {
		return c
	}
	return to
}

// EquivalenceClass returns every code point case-insensitively equivalent
// to c (including c itself and its canonical upper-case form), or nil if c
// is its own singleton class.
func EquivalenceClass(c rune) []rune {
	cp := int32(c)
	page := classCache.Page(cp, func(idx int32) *casepage.ClassPage {
		return casepage.BuildClassPage(idx)
	})
	if page == nil {
		return nil
	}
	return page.Lookup(uint8(cp & 0xFF))
}
