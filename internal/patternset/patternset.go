// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patternset compiles the regular expressions the matcher engine
// scans text with. Every pattern is built once, on the first call to Get,
// and never recompiled: MatcherInstances share a single immutable Set the same way
// ferret-scan's validators share their package-level regexp.MustCompile
// tables.
package patternset

import (
	"regexp"
	"sync"
)

// MaxLengthForNsn and MaxLengthCountryCode mirror libphonenumber's published
// constants (kMaxLengthForNsn, kMaxLengthCountryCode). The Go phonenumbers
// port does not export these, so they are reproduced here directly, the same
// way ferret-scan's validators hardcode their own regex literals rather than
// importing a pattern-generation library.
const (
	MaxLengthForNsn      = 17
	MaxLengthCountryCode = 3

	// DigitBlockLimit bounds the total run of digits the candidate pattern
	// will swallow: a national significant number plus a country code.
	DigitBlockLimit = MaxLengthForNsn + MaxLengthCountryCode
)

// OpeningParens and ClosingParens are the bracket characters the candidate
// pattern and the bracket-balance check reason about, including the
// fullwidth CJK variants libphonenumber also recognizes.
const (
	OpeningParens = `(\[（［`
	ClosingParens = `)\]）］`

	// PlusChars is libphonenumber's kPlusChars: the ASCII plus sign and its
	// fullwidth counterpart.
	PlusChars = `+\x{FF0B}`

	// ValidPunctuation is libphonenumber's kValidPunctuation: the characters
	// permitted between digit groups inside a candidate (dashes of every
	// width, slashes, dots, tildes, whitespace, and brackets).
	ValidPunctuation = " \t\n  ⁠　" + `\-‐-―−ー－\-/\./~⁓∼～()（）［］.\[\]`
)

// LeadClassChars is the character class valid at the start of a candidate:
// an opening bracket or a plus sign.
const LeadClassChars = OpeningParens + PlusChars

// extnPatterns mirrors libphonenumber's GetExtnPatternsForMatching(): the
// alternation of labels that can introduce a trailing extension, optionally
// preceded by spaces, tabs, or commas.
const extnPatterns = `[ \x{00A0}\t,]*(?:;ext=|x|ext\.?|[eE][xX][tT][eE][nN][sS][iI][oO][nN]|[,;]+|[/\\]|#)[\s.]*(\d{1,7})#?`

// Set is the process-wide, read-only bundle of compiled patterns described
// in spec §4.1.
type Set struct {
	// Phone is the principal candidate pattern. Its single capture group
	// (index 1) is the candidate substring.
	Phone *regexp.Regexp

	// MatchingBrackets full-matches a candidate and rejects unbalanced
	// bracketing.
	MatchingBrackets *regexp.Regexp

	// GroupSeparator finds the first whitespace-delimited boundary inside a
	// candidate, used by the inner-match extractor to peel groups.
	GroupSeparator *regexp.Regexp

	// PubPages, SlashSeparatedDates, and TimeStamps/TimeStampsSuffix reject
	// common false-positive shapes before a candidate reaches the parser.
	PubPages            *regexp.Regexp
	SlashSeparatedDates *regexp.Regexp
	TimeStamps          *regexp.Regexp
	TimeStampsSuffix    *regexp.Regexp

	// CapturingAsciiDigits captures a run of ASCII digits.
	CapturingAsciiDigits *regexp.Regexp

	// LeadClass matches a single lead-class character.
	LeadClass *regexp.Regexp

	// SecondNumberStart locates a "/x" or "/ x" marker inside a candidate
	// that signals a second, adjacent number has been swallowed (e.g. a
	// second extension written "650-253-0000 x123/x456"); CandidateProducer
	// trims the candidate to the text preceding the match.
	SecondNumberStart *regexp.Regexp
}

func build() *Set {
	punctuation := `[` + ValidPunctuation + `]{0,4}`
	digitSequence := `\p{Nd}{1,` + itoa(DigitBlockLimit) + `}`
	leadClass := `[` + LeadClassChars + `]`
	openingPunctuation := `(?:` + leadClass + punctuation + `)`
	optionalExtn := `(?i)(?:` + extnPatterns + `)?`

	phone := `(` +
		openingPunctuation + `{0,2}` +
		digitSequence +
		`(?:` + punctuation + digitSequence + `){0,` + itoa(DigitBlockLimit) + `}` +
		optionalExtn +
		`)`

	nonParens := `[^` + OpeningParens + ClosingParens + `]`
	matchingBrackets := `^(?:[` + OpeningParens + `])?` +
		`(?:` + nonParens + `+[` + ClosingParens + `])?` +
		nonParens + `+` +
		`(?:[` + OpeningParens + `]` + nonParens + `+[` + ClosingParens + `]){0,3}` +
		nonParens + `*$`

	groupSeparator := `\p{Z}[^` + LeadClassChars + `\p{Nd}]*`

	return &Set{
		Phone:                        regexp.MustCompile(phone),
		MatchingBrackets:             regexp.MustCompile(matchingBrackets),
		GroupSeparator:               regexp.MustCompile(groupSeparator),
		PubPages:                     regexp.MustCompile(`\d{1,5}-+\d{1,5}\s{0,4}\(\d{1,4}`),
		SlashSeparatedDates:          regexp.MustCompile(`(?:(?:[0-3]?\d/[01]?\d)|(?:[01]?\d/[0-3]?\d))/(?:[12]\d)?\d{2}`),
		TimeStamps:                   regexp.MustCompile(`[12]\d{3}[-/]?[01]\d[-/]?[0-3]\d [0-2]\d$`),
		TimeStampsSuffix:             regexp.MustCompile(`^:[0-5]\d`),
		CapturingAsciiDigits:         regexp.MustCompile(`(\d+)`),
		LeadClass:            regexp.MustCompile(leadClass),
		SecondNumberStart:    regexp.MustCompile(`[/\\] *[xX]`),
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

var (
	once sync.Once
	set  *Set
)

// Get returns the process-wide compiled pattern bundle, building it on the
// first call. Safe for concurrent use by many MatcherInstances.
func Get() *Set {
	once.Do(func() {
		set = build()
	})
	return set
}
