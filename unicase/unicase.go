// Package unicase implements the engine's public string-conversion API:
// ToUpper and ToLower. Both stream the input's code points through the
// page cache in package casepage, copying unchanged runs verbatim and
// appending mapped output only where a mapping exists.
package unicase

import (
	"strings"
	"unicode/utf8"

	"github.com/bdwalton/uncase/casepage"
)

var (
	upperCache = casepage.NewCache[*casepage.StringPage]("to_upper")
	lowerCache = casepage.NewCache[*casepage.StringPage]("to_lower")
)

func lookupUpper(cp int32) (string, bool) {
	page := upperCache.Page(cp, func(idx int32) *casepage.StringPage {
		return casepage.BuildStringPage(true, idx)
	})
	if page == nil {
		return "", false
	}
	return page.Lookup(uint8(cp & 0xFF))
}

func lookupLower(cp int32) (string, bool) {
	page := lowerCache.Page(cp, func(idx int32) *casepage.StringPage {
		return casepage.BuildStringPage(false, idx)
	})
	if page == nil {
		return "", false
	}
	return page.Lookup(uint8(cp & 0xFF))
}

// ToUpper returns the upper-case form of s. If no code point in s has a
// mapping, s itself is returned (no copy is made).
func ToUpper(s string) string {
	return convert(s, lookupUpper)
}

// ToLower returns the lower-case form of s. If no code point in s has a
// mapping, s itself is returned (no copy is made).
func ToLower(s string) string {
	return convert(s, lookupLower)
}

// convert scans s by code point, flushing unchanged runs as sub-slices and
// appending mapped output as it's found. Decoding via utf8.DecodeRuneInString
// (rather than range s) keeps the byte width exact for malformed input: an
// invalid byte decodes to (RuneError, 1), which never has a table entry and
// so passes through unchanged — satisfying the identity requirement for
// malformed code points without any special-case handling here.
func convert(s string, lookup func(int32) (string, bool)) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	runStart := 0
	changed := false

	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		mapped, ok := lookup(int32(r))
		if ok {
			if !changed {
				b.Grow(len(s) + len(mapped))
				changed = true
			}
			b.WriteString(s[runStart:i])
			b.WriteString(mapped)
			runStart = i + w
		}
		i += w
	}

	if !changed {
		return s
	}
	b.WriteString(s[runStart:])
	return b.String()
}
