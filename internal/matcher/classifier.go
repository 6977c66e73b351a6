// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import "phonehound/internal/patternset"

// classifier rejects candidates that look like publication page ranges,
// slash-separated dates, or timestamps, before they reach the parser
// (spec §4.3).
type classifier struct {
	patterns *patternset.Set
}

// accepts reports whether candidate should be passed on to verification.
// textAfterCandidate is the text immediately following the candidate,
// needed to confirm a timestamp's trailing ":MM" suffix.
func (c classifier) accepts(raw, textAfterCandidate string) bool {
	if c.patterns.PubPages.MatchString(raw) {
		return false
	}
	if c.patterns.SlashSeparatedDates.MatchString(raw) {
		return false
	}
	if c.patterns.TimeStamps.MatchString(raw) && c.patterns.TimeStampsSuffix.MatchString(textAfterCandidate) {
		return false
	}
	return true
}
