// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"regexp"
	"strings"
	"unicode"

	"phonehound/internal/phonelib"
)

var digitRun = regexp.MustCompile(`\d+`)

// verify implements the four leniency tiers (spec §4.5) against number,
// the parsed value, and candidate, the literal text it was parsed from.
func verify(leniency Leniency, number *phonelib.Number, candidate string) bool {
	switch leniency {
	case Possible:
		return phonelib.IsPossible(number)
	case Valid:
		return isValid(number, candidate)
	case StrictGrouping:
		return isValid(number, candidate) &&
			strings.Count(candidate, "/") < 2 &&
			strictGroupAlign(number, candidate)
	case ExactGrouping:
		return isValid(number, candidate) &&
			strings.Count(candidate, "/") < 2 &&
			exactGroupAlign(number, candidate)
	default:
		// Unknown leniency tier: implementation bug, per spec §7 — no match.
		return false
	}
}

func isValid(number *phonelib.Number, candidate string) bool {
	return phonelib.IsValid(number) &&
		containsOnlyValidXChars(number, candidate) &&
		nationalPrefixPresentIfRequired(number)
}

// containsOnlyValidXChars scans candidate for the first ASCII x/X that is
// not its last character. A following x/X pair is a carrier-code marker,
// whose tail must be an NSN-level match for number; otherwise the tail,
// digit-normalized, must equal number's extension (spec §4.5).
func containsOnlyValidXChars(number *phonelib.Number, candidate string) bool {
	ext := phonelib.Extension(number)

	i := 0
	for i < len(candidate) {
		c := candidate[i]
		if c != 'x' && c != 'X' {
			i++
			continue
		}
		if i == len(candidate)-1 {
			// Trailing x/X as the final character is ignored.
			break
		}

		next := candidate[i+1]
		if next == 'x' || next == 'X' {
			tail := candidate[i+1:]
			if !phonelib.IsNsnMatch(phonelib.IsNumberMatchWithOneString(number, tail)) {
				return false
			}
			i += 2
			continue
		}

		tail := candidate[i:]
		if phonelib.NormalizeDigitsOnly(tail) != ext {
			return false
		}
		i++
	}
	return true
}

// nationalPrefixPresentIfRequired implements spec §4.5's national-prefix
// presence rule. Where libphonenumber's Java implementation consults an
// internal chooseFormattingPatternForNumber to find the exact format rule
// in force, the Go port does not re-export that step; this instead asks
// whether the region's number formats normally carry the national prefix
// at all, then confirms the raw input actually strips one, which is
// equivalent for every region with a single national-prefix rule (see
// DESIGN.md).
func nationalPrefixPresentIfRequired(number *phonelib.Number) bool {
	if !phonelib.IsFromDefaultCountry(number) {
		return true
	}
	region := phonelib.RegionCodeForCountryCode(int(number.GetCountryCode()))
	if region == "" {
		return true
	}
	meta := phonelib.MetadataForRegion(region)
	if meta == nil {
		return true
	}
	if !phonelib.NationalPrefixRequiredForNumber(meta) {
		return true
	}
	rawDigits := phonelib.NormalizeDigitsOnly(number.GetRawInput())
	if rawDigits == "" {
		return true
	}
	_, stripped := phonelib.MaybeStripNationalPrefixAndCarrierCode(meta, rawDigits)
	return stripped
}

// nationalGroups formats number in RFC3966 grouped form, strips any
// ";ext=" suffix and the leading "+CC-", and splits the remainder into its
// dash-separated groups.
func nationalGroups(number *phonelib.Number) []string {
	formatted := phonelib.FormatRFC3966(number)
	if idx := strings.Index(formatted, ";ext="); idx >= 0 {
		formatted = formatted[:idx]
	}
	formatted = strings.TrimPrefix(formatted, "+")
	parts := strings.SplitN(formatted, "-", 2)
	if len(parts) != 2 {
		return parts
	}
	return strings.Split(parts[1], "-")
}

// normalizeCandidateDigits maps every Unicode decimal digit in s to its
// ASCII 0-9 equivalent, leaving every other character untouched.
func normalizeCandidateDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if v, ok := decimalDigitValue(r); ok {
			b.WriteByte(byte('0' + v))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decimalDigitValue returns r's value (0-9) if r belongs to any Unicode
// decimal-digit block, and ok=false otherwise. Every such block is exactly
// ten code points wide, zero through nine, so the value is the offset from
// the start of whichever ten-wide span contains r.
func decimalDigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return -1, false
	}
	for _, rng := range unicode.Nd.R16 {
		if uint16(r) >= rng.Lo && uint16(r) <= rng.Hi {
			zero := rng.Lo + ((uint16(r)-rng.Lo)/10)*10
			return int(uint16(r) - zero), true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if uint32(r) >= rng.Lo && uint32(r) <= rng.Hi {
			zero := rng.Lo + ((uint32(r)-rng.Lo)/10)*10
			return int(uint32(r) - zero), true
		}
	}
	return -1, false
}

// strictGroupAlign implements spec §4.5's strict grouping algorithm.
func strictGroupAlign(number *phonelib.Number, candidate string) bool {
	groups := nationalGroups(number)
	if len(groups) == 0 {
		return true
	}
	normalized := normalizeCandidateDigits(candidate)

	from := 0
	first := groups[0]
	idx := strings.Index(normalized[from:], first)
	if idx < 0 {
		return false
	}
	from = from + idx + len(first)

	if from < len(normalized) && isASCIIDigit(normalized[from]) {
		prefixStart := from - len(first)
		if prefixStart < 0 {
			return false
		}
		return strings.HasPrefix(normalized[prefixStart:], phonelib.NationalSignificantNumber(number))
	}

	for _, group := range groups[1:] {
		idx := strings.Index(normalized[from:], group)
		if idx < 0 {
			return false
		}
		from = from + idx + len(group)
	}

	ext := phonelib.Extension(number)
	if ext == "" {
		return true
	}
	return strings.Contains(normalized[from:], ext)
}

// exactGroupAlign implements spec §4.5's exact grouping algorithm.
func exactGroupAlign(number *phonelib.Number, candidate string) bool {
	groups := nationalGroups(number)
	if len(groups) == 0 {
		return false
	}
	normalized := normalizeCandidateDigits(candidate)
	candidateGroups := digitRun.FindAllString(normalized, -1)
	if len(candidateGroups) == 0 {
		return false
	}

	tailIndex := len(candidateGroups) - 1
	if phonelib.HasExtension(number) {
		tailIndex = len(candidateGroups) - 2
	}
	if tailIndex < 0 {
		return false
	}

	nsn := phonelib.NationalSignificantNumber(number)
	if len(candidateGroups) == 1 || strings.Contains(candidateGroups[tailIndex], nsn) {
		return true
	}

	for gi, ci := len(groups)-1, tailIndex; gi > 0; gi, ci = gi-1, ci-1 {
		if ci < 0 || candidateGroups[ci] != groups[gi] {
			return false
		}
	}
	ci := tailIndex - (len(groups) - 1)
	if ci < 0 {
		return false
	}
	return strings.HasSuffix(candidateGroups[ci], groups[0])
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
