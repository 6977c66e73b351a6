// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

// Leniency controls how strictly a candidate's formatting must correspond
// to the parser's canonical grouping before it is accepted as a match.
// Tiers are monotonically strict: POSSIBLE < VALID < STRICT_GROUPING <
// EXACT_GROUPING. A higher tier implies every predicate of the tiers below
// it, except POSSIBLE, which is an alternative, non-strict branch.
type Leniency int

const (
	// Possible accepts anything that is a plausible phone number shape,
	// regardless of validity or formatting.
	Possible Leniency = iota
	// Valid additionally requires the number to validate against its
	// region's metadata, that any "x" suffix is a real extension or
	// carrier code, and that a required national prefix is present.
	Valid
	// StrictGrouping additionally requires the candidate's digit grouping
	// to line up with the parser's canonical grouping, tolerating a
	// missing inter-group separator after the first group.
	StrictGrouping
	// ExactGrouping additionally requires the candidate's digit grouping
	// to match the canonical grouping exactly, group for group.
	ExactGrouping
)

func (l Leniency) String() string {
	switch l {
	case Possible:
		return "POSSIBLE"
	case Valid:
		return "VALID"
	case StrictGrouping:
		return "STRICT_GROUPING"
	case ExactGrouping:
		return "EXACT_GROUPING"
	default:
		return "UNKNOWN"
	}
}
