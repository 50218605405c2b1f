// Package casepage builds and caches 256-code-point pages from the
// bytecode programs in package tables. It realizes components C and D of
// the engine: per-page construction (this file and class.go) and the
// per-table lookup cache (cache.go).
package casepage

import (
	"github.com/bdwalton/uncase/bytecode"
	"github.com/bdwalton/uncase/tables"
)

// pageSize is the number of code points covered by one page (the low 8
// bits of a code point select an entry within it).
const pageSize = 256

// policy tags the per-entry write strategy buildStringPage uses for one
// program's emissions. Every page builder shares the bounded scan loop
// (scanProgram); buildStringPage is parameterized by this tag instead of
// giving each string table its own builder type. BuildCanonicalPage writes
// code points directly without consulting a policy, and no builder
// dispatches on overwriteCodepoint.
type policy uint8

const (
	overwriteString policy = iota
	appendString
	overwriteCodepoint
	// equivalenceClass is not dispatched through buildStringPage: its
	// two-pass construction (collect canonicals, then collect siblings)
	// doesn't fit the single overwrite-or-append shape the other three
	// share. See class.go.
)

// StringPage holds, for each of its 256 code points, the short output
// string that code point maps to (or the zero value, meaning no mapping).
type StringPage struct {
	entries [pageSize]shortString
}

// Lookup returns the mapped string for the low byte of a code point, and
// whether an entry existed.
func (p *StringPage) Lookup(low uint8) (string, bool) {
	e := p.entries[low]
	if e.n == 0 {
		return "", false
	}
	return e.String(), true
}

// CodepointPage holds, for each of its 256 code points, the single mapped
// code point (or noEntry, meaning no mapping).
type CodepointPage struct {
	entries [pageSize]int32
}

const noEntry int32 = -1

// Lookup returns the mapped code point for the low byte of a code point,
// and whether an entry existed.
func (p *CodepointPage) Lookup(low uint8) (rune, bool) {
	e := p.entries[low]
	if e == noEntry {
		return 0, false
	}
	return rune(e), true
}

// scanProgram drives the interpreter over prog, restricting attention to
// the code point range [min, max] (one page's worth) and calling visit for
// every pair that falls inside it. It implements the bounded-scan contract
// from the page builder spec: stop once from exceeds the page, skip
// (without stopping) anything below it.
func scanProgram(prog bytecode.Program, toUpper bool, min, max int32, visit func(from, to int32)) {
	bytecode.Run(prog, toUpper, func(from, to int32) bool {
		if from > max {
			return false
		}
		if from < min {
			return true
		}
		visit(from, to)
		return true
	})
}

// buildStringPage runs programs in order over [min, max], writing each
// one's emissions into the page per the matching policy entry. Used for
// both to_upper (four programs: ToUpper, S1, S2, S3) and to_lower (one
// program: ToLower).
func buildStringPage(programs []bytecode.Program, policies []policy, toUpper bool, pageIdx int32) *StringPage {
	min := pageIdx << 8
	max := min + 0xFF

	var page StringPage
	wrote := false
	for i, prog := range programs {
		pol := policies[i]
		scanProgram(prog, toUpper, min, max, func(from, to int32) {
			idx := uint8(from & 0xFF)
			switch pol {
			case overwriteString:
				page.entries[idx] = newShortString1(rune(to))
				wrote = true
			case appendString:
				if page.entries[idx].n == 0 {
					// S2/S3 firing with no existing entry cannot
					// happen on valid tables; ignore per spec.
					return
				}
				page.entries[idx] = page.entries[idx].append(rune(to))
			}
		})
	}
	if !wrote {
		return nil
	}
	return &page
}

// BuildStringPage builds a to_upper or to_lower page for pageIdx.
func BuildStringPage(toUpper bool, pageIdx int32) *StringPage {
	if toUpper {
		return buildStringPage(
			[]bytecode.Program{tables.ToUpper, tables.S1, tables.S2, tables.S3},
			[]policy{overwriteString, overwriteString, appendString, appendString},
			true, pageIdx,
		)
	}
	return buildStringPage(
		[]bytecode.Program{tables.ToLower},
		[]policy{overwriteString},
		false, pageIdx,
	)
}

// BuildCanonicalPage builds the regex-canonical page for pageIdx: each
// entry is the single upper-case code point TO_UPPER maps it to.
func BuildCanonicalPage(pageIdx int32) *CodepointPage {
	min := pageIdx << 8
	max := min + 0xFF

	var page CodepointPage
	for i := range page.entries {
		page.entries[i] = noEntry
	}
	wrote := false
	scanProgram(tables.ToUpper, true, min, max, func(from, to int32) {
		page.entries[from&0xFF] = to
		wrote = true
	})
	if !wrote {
		return nil
	}
	return &page
}
