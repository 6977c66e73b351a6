// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import "phonehound/internal/phonelib"

// PhoneMatch is an immutable record of one phone number found in a scanned
// text: the byte range it occupies, the literal substring matched, and the
// parsed, structured number. PhoneMatch is only ever constructed by a
// successful parse_and_verify — there is no partial or candidate state a
// caller can observe.
type PhoneMatch struct {
	// Start is the byte offset of RawString within the text the matcher
	// was scanning.
	Start int
	// RawString is the literal matched substring.
	RawString string
	// Number is the parsed number, with CountryCodeSource,
	// PreferredDomesticCarrierCode, and RawInput cleared (see DESIGN.md for
	// why this clearing is preserved rather than "fixed").
	Number *phonelib.Number
}

// End returns the byte offset one past the end of RawString.
func (m PhoneMatch) End() int {
	return m.Start + len(m.RawString)
}

// clearRawInputFields removes the bookkeeping fields PhoneLib uses
// internally to reparse raw input, leaving only the fields a caller needs
// to treat the number as a normal parsed PhoneNumber (spec §3, §4.7).
func clearRawInputFields(number *phonelib.Number) *phonelib.Number {
	number.CountryCodeSource = nil
	number.PreferredDomesticCarrierCode = nil
	number.RawInput = nil
	return number
}
