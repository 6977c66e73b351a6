// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import "phonehound/internal/patternset"

// candidate is a substring proposed by the phone pattern, before
// classification or verification.
type candidate struct {
	start int
	raw   string
}

// candidateProducer walks a text from a given byte offset using the
// principal phone pattern in find-and-consume mode, yielding one candidate
// per call to next until the pattern stops matching (spec §4.2). The shared
// max_tries budget is enforced by the caller, find, not by the producer.
type candidateProducer struct {
	patterns *patternset.Set
	text     string
	cursor   int // byte offset of the unconsumed remainder within text
}

func newCandidateProducer(patterns *patternset.Set, text string, start int) *candidateProducer {
	return &candidateProducer{patterns: patterns, text: text, cursor: start}
}

// next returns the next candidate at or after the producer's cursor, or
// ok=false once the phone pattern no longer matches the remainder. It does
// not itself account against max_tries; callers decrement the budget per
// attempted candidate.
func (p *candidateProducer) next() (candidate, bool) {
	remaining := p.text[p.cursor:]
	loc := p.patterns.Phone.FindStringSubmatchIndex(remaining)
	if loc == nil {
		p.cursor = len(p.text)
		return candidate{}, false
	}

	groupStart, groupEnd := loc[2], loc[3]
	raw := remaining[groupStart:groupEnd]
	start := p.cursor + groupStart

	// Advance the sub-cursor past the whole match (not just the capture
	// group) so the next search resumes after this attempt, the
	// find-and-consume behaviour spec §4.2 describes.
	p.cursor += loc[1]

	raw = trimSecondNumber(p.patterns, raw)

	return candidate{start: start, raw: raw}, true
}

// trimSecondNumber returns raw cut back to the prefix before the first
// "/x" second-number marker, so a candidate that accidentally swallowed an
// adjacent shared-extension number is cut back to just the first number
// (spec §4.2's "capture up to the second number start" step).
func trimSecondNumber(patterns *patternset.Set, raw string) string {
	loc := patterns.SecondNumberStart.FindStringIndex(raw)
	if loc == nil {
		return raw
	}
	return raw[:loc[0]]
}
