// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import "phonehound/internal/phonelib"

// extractInnerMatch is invoked only once a whole-candidate parseAndVerify has
// failed. It peels the leading group-separated chunk, then the tail after
// it, then the candidate without its trailing group, retrying each as a
// fresh candidate (spec §4.6). Each failed attempt costs one unit of *tries,
// the shared max_tries budget, and the extractor stops once it reaches zero.
func extractInnerMatch(m *MatcherInstance, candidate string, offset int, tries *int) *PhoneMatch {
	loc := m.patterns.GroupSeparator.FindStringIndex(candidate)
	if loc == nil {
		return nil
	}
	split := loc[0]

	head := phonelib.TrimUnwantedEndChars(candidate[:split])
	if match := parseAndVerify(m, head, offset); match != nil {
		return match
	}

	*tries--
	if *tries <= 0 {
		return nil
	}

	tail := phonelib.TrimUnwantedEndChars(candidate[loc[1]:])
	if match := parseAndVerify(m, tail, offset+loc[1]); match != nil {
		return match
	}

	*tries--
	if *tries <= 0 {
		return nil
	}

	lastSplit := split
	cursor := loc[1]
	for {
		next := m.patterns.GroupSeparator.FindStringIndex(candidate[cursor:])
		if next == nil {
			break
		}
		lastSplit = cursor + next[0]
		cursor += next[1]
	}

	withoutLast := phonelib.TrimUnwantedEndChars(candidate[:lastSplit])
	if withoutLast == head {
		return nil
	}

	match := parseAndVerify(m, withoutLast, offset)
	if match == nil {
		*tries--
	}
	return match
}
