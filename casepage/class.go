package casepage

import (
	"github.com/bdwalton/uncase/bytecode"
	"github.com/bdwalton/uncase/tables"
)

// ClassPage holds, for each of its 256 code points, the full case-
// insensitive equivalence class that code point belongs to (nil for
// singletons, per the compaction step below).
type ClassPage struct {
	entries [pageSize][]rune
}

// Lookup returns the equivalence class for the low byte of a code point.
// A nil result means that code point is its own singleton class.
func (p *ClassPage) Lookup(low uint8) []rune {
	return p.entries[low]
}

// noOwner marks a page slot with no assigned class yet.
const noOwner int32 = -1

// BuildClassPage runs the two-pass equivalence-class construction
// described for the regex-equivalence-class table: Pass 1 collects every
// code point in this page that has an upper-case mapping, grouping by
// canonical; singleton-fill then ensures every remaining code point in the
// page has a class (the class Pass 1 built for it, with the canonical put
// first, if it is a canonical, or a fresh singleton otherwise), and every
// canonical outside the page is put first in its own class; Pass 2 re-runs
// the whole program to add siblings from any page whose canonical has a
// class here (e.g. U+1FB3 joining U+0391's class when building page 3);
// compaction then drops every length-1 class back to absent.
//
// classes is keyed by canonical code point rather than by page slot, since
// several page slots (every member of a class) must end up sharing the
// exact same final slice — owner defers that lookup to the end of
// construction so in-place append growth never leaves a stale page entry
// pointing at an earlier, shorter version of its class.
func BuildClassPage(pageIdx int32) *ClassPage {
	return buildClassPage(tables.ToUpper, pageIdx)
}

// buildClassPage is BuildClassPage parameterized over its source program,
// split out so tests can exercise the ASCII-asymmetry and sibling-dedup
// branches with synthetic programs the shipped tables don't happen to
// trigger.
func buildClassPage(prog bytecode.Program, pageIdx int32) *ClassPage {
	min := pageIdx << 8
	max := min + 0xFF

	classes := map[int32][]rune{}
	var owner [pageSize]int32
	for i := range owner {
		owner[i] = noOwner
	}

	markOwner := func(cp, canonical int32) {
		if cp < min || cp > max {
			return
		}
		owner[cp&0xFF] = canonical
	}

	scanProgram(prog, true, min, max, func(from, to int32) {
		if asciiAsymmetric(from, to) {
			return
		}
		classes[to] = appendUnique(classes[to], rune(from))
		markOwner(from, to)
	})

	for cp := min; cp <= max; cp++ {
		idx := cp & 0xFF
		if owner[idx] != noOwner {
			continue
		}
		if cls, ok := classes[cp]; ok {
			classes[cp] = ensureFront(cls, rune(cp))
		} else {
			classes[cp] = []rune{rune(cp)}
		}
		owner[idx] = cp
	}
	for to, cls := range classes {
		if to < min || to > max {
			classes[to] = ensureFront(cls, rune(to))
		}
	}

	bytecode.Run(prog, true, func(from, to int32) bool {
		if asciiAsymmetric(from, to) {
			return true
		}
		if _, ok := classes[to]; !ok {
			return true
		}
		classes[to] = appendUnique(classes[to], rune(from))
		markOwner(from, to)
		markOwner(to, to)
		return true
	})

	var page ClassPage
	wrote := false
	for i := 0; i < pageSize; i++ {
		if owner[i] == noOwner {
			continue
		}
		cls := classes[owner[i]]
		if len(cls) > 1 {
			page.entries[i] = cls
			wrote = true
		}
	}
	if !wrote {
		return nil
	}
	return &page
}

// asciiAsymmetric implements the ECMAScript-mandated rule (ES5 21.2.2.8.2
// step 3g): an ASCII character never becomes equivalent to a non-ASCII one
// under case folding.
func asciiAsymmetric(from, to int32) bool {
	return from <= 0x7F && to > 0x7F
}

func appendUnique(lst []rune, r rune) []rune {
	for _, x := range lst {
		if x == r {
			return lst
		}
	}
	return append(lst, r)
}

// ensureFront returns lst with r at index 0, inserting it if absent. Used
// to put the canonical upper-case form first in its own class, matching
// the ['S','s']-style ordering the engine's tests assert on.
func ensureFront(lst []rune, r rune) []rune {
	for _, x := range lst {
		if x == r {
			return lst
		}
	}
	out := make([]rune, 0, len(lst)+1)
	out = append(out, r)
	return append(out, lst...)
}
