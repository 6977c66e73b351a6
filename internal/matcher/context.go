// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Unicode blocks the Go standard library does not tabulate (it only ships
// scripts and general categories), reproduced here as the fixed code-point
// ranges the Unicode Character Database assigns them. golang.org/x/text's
// rangetable.Merge composes them into the single table the context checker
// tests against, the same way x/text itself builds composite tables out of
// block-sized pieces.
var (
	basicLatin = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0000, Hi: 0x007F, Stride: 1}},
	}
	latin1Supplement = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0080, Hi: 0x00FF, Stride: 1}},
	}
	latinExtendedA = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0100, Hi: 0x017F, Stride: 1}},
	}
	latinExtendedB = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0180, Hi: 0x024F, Stride: 1}},
	}
	combiningDiacriticalMarks = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036F, Stride: 1}},
	}
	latinExtendedAdditional = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x1E00, Hi: 0x1EFF, Stride: 1}},
	}

	latinBlocks = rangetable.Merge(
		basicLatin,
		latin1Supplement,
		latinExtendedA,
		latinExtendedB,
		combiningDiacriticalMarks,
		latinExtendedAdditional,
	)
)

// isLatinLetter reports whether r is a Latin letter per spec §4.4: a code
// point that is alphabetic or a combining/non-spacing mark, and whose block
// is one of the Latin blocks above.
func isLatinLetter(r rune) bool {
	if !unicode.Is(latinBlocks, r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

// isInvalidPunctuationSymbol reports whether r is '%' or any currency
// symbol, the two context characters that veto a neighbouring number at
// leniency >= VALID.
func isInvalidPunctuationSymbol(r rune) bool {
	return r == '%' || unicode.Is(unicode.Sc, r)
}

// decodeLastRune decodes the final complete UTF-8 sequence in s.
func decodeLastRune(s string) (rune, int) {
	return utf8.DecodeLastRuneInString(s)
}

// decodeFirstRune decodes the first complete UTF-8 sequence in s.
func decodeFirstRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

// contextChecker rejects candidates adjacent to Latin letters or invalid
// punctuation symbols. It is only engaged at leniency >= VALID (spec §4.4).
type contextChecker struct{}

// accepts inspects the code points immediately before and after the
// candidate within the full text and reports whether the surrounding
// context permits a phone number here.
func (contextChecker) accepts(text string, start, end int, candidateStartsWithLeadClass bool) bool {
	if start > 0 && !candidateStartsWithLeadClass {
		r, _ := decodeLastRune(text[:start])
		if r != utf8.RuneError && (isLatinLetter(r) || isInvalidPunctuationSymbol(r)) {
			return false
		}
	}
	if end < len(text) {
		r, _ := decodeFirstRune(text[end:])
		if r != utf8.RuneError && (isLatinLetter(r) || isInvalidPunctuationSymbol(r)) {
			return false
		}
	}
	return true
}
