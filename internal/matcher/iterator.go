// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher implements the phone-number matcher engine: a two-stage
// scanning pipeline that proposes candidate substrings, classifies and
// trims them, and verifies each against a chosen leniency tier before
// emitting a PhoneMatch. The parser, validator, and formatter behind it are
// all supplied by internal/phonelib.
package matcher

import (
	"math"

	"phonehound/internal/patternset"
	"phonehound/internal/phonelib"
)

// MatcherInstance is a single-use, stateful scan over one text. It is not
// safe for concurrent use; run many instances in parallel across distinct
// texts instead (spec §5).
type MatcherInstance struct {
	patterns *patternset.Set

	text            string
	preferredRegion string
	leniency        Leniency
	maxTries        int

	state      state
	lastMatch  *PhoneMatch
	searchIndex int
}

// New constructs a matcher over text with an explicit leniency and
// max_tries budget.
func New(text, preferredRegion string, leniency Leniency, maxTries int) *MatcherInstance {
	return &MatcherInstance{
		patterns:        patternset.Get(),
		text:            text,
		preferredRegion: preferredRegion,
		leniency:        leniency,
		maxTries:        maxTries,
		state:           stateNotReady,
	}
}

// NewDefault constructs a matcher with the short form's defaults: leniency
// VALID and an effectively unbounded max_tries (spec §6).
func NewDefault(text, preferredRegion string) *MatcherInstance {
	return New(text, preferredRegion, Valid, math.MaxInt)
}

// HasNext reports whether a further match is available, producing and
// caching it if necessary (spec §4.8).
func (m *MatcherInstance) HasNext() bool {
	if m.state == stateNotReady {
		match := m.find(m.searchIndex)
		if match == nil {
			m.state = stateDone
		} else {
			m.lastMatch = match
			m.searchIndex = match.End()
			m.state = stateReady
		}
	}
	return m.state == stateReady
}

// Next returns the next match, or nil once the scan is exhausted.
func (m *MatcherInstance) Next() *PhoneMatch {
	if !m.HasNext() {
		return nil
	}
	match := m.lastMatch
	m.lastMatch = nil
	m.state = stateNotReady
	return match
}

// find drives CandidateProducer -> CandidateClassifier -> parseAndVerify,
// falling back to the inner-match extractor, until a candidate verifies or
// the budget/pattern is exhausted (spec §4.8).
func (m *MatcherInstance) find(start int) *PhoneMatch {
	producer := newCandidateProducer(m.patterns, m.text, start)
	classify := classifier{patterns: m.patterns}

	for m.maxTries > 0 {
		cand, ok := producer.next()
		if !ok {
			return nil
		}
		m.maxTries--

		textAfter := m.text[min(cand.start+len(cand.raw), len(m.text)):]
		if !classify.accepts(cand.raw, textAfter) {
			continue
		}

		if match := parseAndVerify(m, cand.raw, cand.start); match != nil {
			return match
		}
		if match := extractInnerMatch(m, cand.raw, cand.start, &m.maxTries); match != nil {
			return match
		}
	}
	return nil
}

// parseAndVerify runs spec §4.7's four steps against one candidate.
func parseAndVerify(m *MatcherInstance, candidate string, offset int) *PhoneMatch {
	if !m.patterns.MatchingBrackets.MatchString(candidate) {
		return nil
	}

	if m.leniency >= Valid {
		startsWithLeadClass := false
		if loc := m.patterns.LeadClass.FindStringIndex(candidate); loc != nil && loc[0] == 0 {
			startsWithLeadClass = true
		}
		end := offset + len(candidate)
		if !(contextChecker{}).accepts(m.text, offset, end, startsWithLeadClass) {
			return nil
		}
	}

	number, err := phonelib.ParseAndKeepRawInput(candidate, m.preferredRegion)
	if err != nil {
		return nil
	}

	if !verify(m.leniency, number, candidate) {
		return nil
	}

	return &PhoneMatch{
		Start:     offset,
		RawString: candidate,
		Number:    clearRawInputFields(number),
	}
}
