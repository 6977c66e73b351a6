// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import "testing"

func collect(m *MatcherInstance) []*PhoneMatch {
	var matches []*PhoneMatch
	for m.HasNext() {
		matches = append(matches, m.Next())
	}
	return matches
}

func TestMatcher_SimpleNumber(t *testing.T) {
	text := "My number is 650-253-0000."
	m := New(text, "US", Valid, 1000)
	matches := collect(m)

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	got := matches[0]
	if got.Start != 13 {
		t.Errorf("start = %d, want 13", got.Start)
	}
	if got.RawString != "650-253-0000" {
		t.Errorf("raw_string = %q, want %q", got.RawString, "650-253-0000")
	}
	if got.Number.GetCountryCode() != 1 || got.Number.GetNationalNumber() != 6502530000 {
		t.Errorf("number = %+v, want +1 650 253 0000", got.Number)
	}
}

func TestMatcher_TrailingLettersRejected(t *testing.T) {
	m := New("Call 1-800-FLOWERS", "US", Valid, 1000)
	matches := collect(m)
	if len(matches) != 0 {
		t.Fatalf("expected 0 matches, got %d: %+v", len(matches), matches)
	}
}

func TestMatcher_PubPagesRejected(t *testing.T) {
	m := New("VLDB J. 12(3): 211-227 (2003).", "US", Valid, 1000)
	matches := collect(m)
	if len(matches) != 0 {
		t.Fatalf("expected 0 matches, got %d: %+v", len(matches), matches)
	}
}

func TestMatcher_TimestampRejected(t *testing.T) {
	m := New("Meeting at 2012-01-02 08:00 in room 5.", "US", Valid, 1000)
	matches := collect(m)
	if len(matches) != 0 {
		t.Fatalf("expected 0 matches, got %d: %+v", len(matches), matches)
	}
}

func TestMatcher_ExtensionAndSecondNumber(t *testing.T) {
	text := "Reach me at (650) 253-0000 x123 or 415-555-1212."
	m := New(text, "US", Valid, 1000)
	matches := collect(m)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if matches[0].RawString != "(650) 253-0000 x123" {
		t.Errorf("first raw_string = %q", matches[0].RawString)
	}
	if matches[1].RawString != "415-555-1212" {
		t.Errorf("second raw_string = %q", matches[1].RawString)
	}
	if matches[1].Start <= matches[0].End() {
		t.Errorf("second match (start %d) does not follow first match (end %d)", matches[1].Start, matches[0].End())
	}
}

func TestMatcher_ExactGroupingRejectsUngroupedDigits(t *testing.T) {
	text := "650-2530000"

	exact := New(text, "US", ExactGrouping, 1000)
	if matches := collect(exact); len(matches) != 0 {
		t.Errorf("EXACT_GROUPING: expected 0 matches, got %d: %+v", len(matches), matches)
	}

	valid := New(text, "US", Valid, 1000)
	if matches := collect(valid); len(matches) != 1 {
		t.Errorf("VALID: expected 1 match, got %d: %+v", len(matches), matches)
	}
}

func TestMatcher_ExactGroupingAcceptsCanonicalGrouping(t *testing.T) {
	text := "My number is 650-253-0000."

	exact := New(text, "US", ExactGrouping, 1000)
	matches := collect(exact)
	if len(matches) != 1 {
		t.Fatalf("EXACT_GROUPING: expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].RawString != "650-253-0000" {
		t.Errorf("raw_string = %q", matches[0].RawString)
	}
}

func TestMatcher_ZeroMaxTriesEmitsNothing(t *testing.T) {
	m := New("My number is 650-253-0000.", "US", Valid, 0)
	if matches := collect(m); len(matches) != 0 {
		t.Errorf("expected 0 matches with max_tries=0, got %d", len(matches))
	}
}

func TestMatcher_NoDigitsNoMatches(t *testing.T) {
	for _, leniency := range []Leniency{Possible, Valid, StrictGrouping, ExactGrouping} {
		m := New("There are no numbers in this sentence at all.", "US", leniency, 1000)
		if matches := collect(m); len(matches) != 0 {
			t.Errorf("leniency %s: expected 0 matches, got %d", leniency, len(matches))
		}
	}
}

func TestMatcher_MatchesNonOverlappingAndOrdered(t *testing.T) {
	text := "Call 650-253-0000 or 415-555-1212 today."
	m := New(text, "US", Valid, 1000)
	matches := collect(m)

	for i := 1; i < len(matches); i++ {
		if matches[i].Start < matches[i-1].End() {
			t.Fatalf("match %d starts (%d) before match %d ends (%d)", i, matches[i].Start, i-1, matches[i-1].End())
		}
	}
	for _, match := range matches {
		if text[match.Start:match.End()] != match.RawString {
			t.Errorf("raw_string %q does not match text[%d:%d] %q", match.RawString, match.Start, match.End(), text[match.Start:match.End()])
		}
	}
}

func TestMatcher_LeniencyMonotonicity(t *testing.T) {
	text := "Call 650-253-0000 or 415-555-1212 today, also 650-2530000."

	countAt := func(l Leniency) int {
		return len(collect(New(text, "US", l, 1000)))
	}

	exact := countAt(ExactGrouping)
	strict := countAt(StrictGrouping)
	valid := countAt(Valid)

	if exact > strict {
		t.Errorf("EXACT_GROUPING matches (%d) exceed STRICT_GROUPING matches (%d)", exact, strict)
	}
	if strict > valid {
		t.Errorf("STRICT_GROUPING matches (%d) exceed VALID matches (%d)", strict, valid)
	}
}

func TestMatcher_IteratorExhaustion(t *testing.T) {
	m := New("no phone numbers here", "US", Valid, 1000)
	if m.HasNext() {
		t.Fatal("expected HasNext to be false on text with no numbers")
	}
	if m.HasNext() {
		t.Fatal("HasNext should remain false once DONE")
	}
	if match := m.Next(); match != nil {
		t.Fatalf("expected Next to return nil once DONE, got %+v", match)
	}
}

func TestNewDefault_UsesValidLeniency(t *testing.T) {
	m := NewDefault("My number is 650-253-0000.", "US")
	if m.leniency != Valid {
		t.Errorf("leniency = %s, want %s", m.leniency, Valid)
	}
	matches := collect(m)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match from default matcher, got %d", len(matches))
	}
}
