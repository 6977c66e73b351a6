// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phonelib adapts github.com/nyaruka/phonenumbers — the Go port of
// Google's libphonenumber — to the narrow set of operations the matcher
// engine needs: parsing, validity/possibility tests, canonical formatting,
// and the national-prefix bookkeeping spec §4.5 and §6 name as consumed
// "from PhoneLib". A few of those operations are unexported internals of
// libphonenumber that the Go port does not re-export (choosing a national
// NumberFormat rule, stripping a national prefix and carrier code, trimming
// stray end punctuation, and the extension/second-number regexes); those are
// reimplemented here against phonenumbers' exported metadata, the same way
// ferret-scan hardcodes its own phone regexes rather than importing a
// pattern-generation library for them.
package phonelib

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Number is the parsed phone number value PhoneMatch carries. It is the
// concrete type the phonenumbers package produces.
type Number = phonenumbers.PhoneNumber

// ParseAndKeepRawInput parses text in the context of a default region,
// retaining enough of the original input (country-code source, raw input)
// for the matcher's leniency checks to inspect before they are stripped at
// emission time (spec §4.7 step 4).
func ParseAndKeepRawInput(text, region string) (*Number, error) {
	return phonenumbers.ParseAndKeepRawInput(text, region)
}

// IsPossible reports whether number is a plausible phone number shape.
func IsPossible(number *Number) bool {
	return phonenumbers.IsPossibleNumber(number)
}

// IsValid reports whether number is valid for its region's metadata.
func IsValid(number *Number) bool {
	return phonenumbers.IsValidNumber(number)
}

// FormatRFC3966 renders number as "+CC-D-D-D[;ext=EXT]", the canonical
// grouped form the group-alignment checks compare candidates against.
func FormatRFC3966(number *Number) string {
	return phonenumbers.Format(number, phonenumbers.RFC3966)
}

// NationalSignificantNumber returns the NSN: the subscriber-dialable digits
// excluding country code and national prefix.
func NationalSignificantNumber(number *Number) string {
	return phonenumbers.GetNationalSignificantNumber(number)
}

// NormalizeDigitsOnly strips number down to its ASCII decimal digits.
func NormalizeDigitsOnly(s string) string {
	return phonenumbers.NormalizeDigitsOnly(s)
}

// trimEndChars are characters libphonenumber's trimUnwantedEndChars() peels
// from the tail of a candidate once it has been split: stray brackets,
// dashes, and whitespace left behind by a group-separator cut.
var trimEndChars = regexp.MustCompile(`[-.()\[\]（）［］\s]+$`)

// TrimUnwantedEndChars right-trims punctuation and whitespace a group split
// can leave dangling at the end of a candidate fragment.
func TrimUnwantedEndChars(s string) string {
	return trimEndChars.ReplaceAllString(s, "")
}

// Extension reports number's extension digits, or "" if it has none.
func Extension(number *Number) string {
	return number.GetExtension()
}

// HasExtension reports whether number carries an extension.
func HasExtension(number *Number) bool {
	return number.Extension != nil && number.GetExtension() != ""
}

// IsFromDefaultCountry reports whether number's country code was inferred
// from the caller-supplied default region rather than read off the text
// itself (a leading "+", IDD prefix, or explicit digits).
func IsFromDefaultCountry(number *Number) bool {
	return number.GetCountryCodeSource() == phonenumbers.PhoneNumber_FROM_DEFAULT_COUNTRY
}

// RegionCodeForCountryCode maps a country calling code to its primary
// region, or "" if unknown.
func RegionCodeForCountryCode(countryCode int) string {
	return phonenumbers.GetRegionCodeForCountryCode(countryCode)
}

// MetadataForRegion returns the phonenumbers metadata for a region, or nil
// if the region is unknown.
func MetadataForRegion(region string) *phonenumbers.PhoneMetadata {
	return phonenumbers.GetMetadataForRegion(region)
}

// NationalPrefixPattern returns the regexp that recognizes region's
// national prefix at the start of a digit string, built from the region's
// metadata (NationalPrefixForParsing, falling back to the literal
// NationalPrefix). It returns nil if the region has no national prefix.
func NationalPrefixPattern(meta *phonenumbers.PhoneMetadata) *regexp.Regexp {
	if meta == nil {
		return nil
	}
	rule := meta.GetNationalPrefixForParsing()
	if rule == "" {
		rule = meta.GetNationalPrefix()
	}
	if rule == "" {
		return nil
	}
	compiled, err := regexp.Compile(`^(?:` + rule + `)`)
	if err != nil {
		return nil
	}
	return compiled
}

// MaybeStripNationalPrefixAndCarrierCode attempts to strip region's
// national prefix (and, where the metadata ties one in, a leading carrier
// code) from the front of digits. It reports whether a prefix was found and
// stripped.
func MaybeStripNationalPrefixAndCarrierCode(meta *phonenumbers.PhoneMetadata, digits string) (string, bool) {
	pattern := NationalPrefixPattern(meta)
	if pattern == nil {
		return digits, false
	}
	loc := pattern.FindStringIndex(digits)
	if loc == nil || loc[0] != 0 {
		return digits, false
	}
	remainder := digits[loc[1]:]
	if remainder == "" {
		return digits, false
	}
	return remainder, true
}

// NationalPrefixRequiredForNumber reports whether region's metadata calls
// for the national prefix when formatting: it returns true if any
// NumberFormat that is not marked national_prefix_optional_when_formatting
// has a NationalPrefixFormattingRule carrying the national prefix. It looks
// at the region's formats as a whole and does not select the NumberFormat
// that applies to a particular number. A region with no national prefix
// (or no metadata) reports false.
func NationalPrefixRequiredForNumber(meta *phonenumbers.PhoneMetadata) bool {
	if meta == nil || meta.GetNationalPrefix() == "" {
		return false // no rule to apply, so the caller's check passes trivially
	}
	for _, format := range meta.GetNumberFormat() {
		rule := format.GetNationalPrefixFormattingRule()
		if rule == "" {
			continue
		}
		if format.GetNationalPrefixOptionalWhenFormatting() {
			continue
		}
		if strings.Contains(rule, "$NP") || strings.Contains(rule, meta.GetNationalPrefix()) {
			return true
		}
	}
	return false
}

// MatchType mirrors phonenumbers.MatchType for the subset the verifier
// inspects.
type MatchType = phonenumbers.MatchType

// IsNumberMatchWithOneString reports whether candidateTail parses (under
// number's region context) to the same number as number, at worst an
// NSN-level match — the carrier-code-vs-extension disambiguation spec §4.5
// requires.
func IsNumberMatchWithOneString(number *Number, candidateTail string) MatchType {
	return phonenumbers.IsNumberMatchWithOneString(number, candidateTail)
}

// IsNsnMatch is the accept threshold for the carrier-code branch of
// containsOnlyValidXChars: only an NSN-level match counts, matching
// libphonenumber's CONTAINS_ONLY_VALID_XCHARS check exactly (not
// EXACT_MATCH, which would accept too much).
func IsNsnMatch(kind MatchType) bool {
	return kind == phonenumbers.NSN_MATCH
}
