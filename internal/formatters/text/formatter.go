// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package text renders scan results as colorized, human-readable text.
package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"phonehound/internal/formatters"
	"phonehound/internal/matcher"
	"phonehound/internal/phonelib"
)

// Formatter implements text-based output formatting.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
			"yellow": color.New(color.FgYellow),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	total := 0
	for _, result := range results {
		total += len(result.Matches)
	}
	if total == 0 {
		return "No phone numbers found.", nil
	}

	var builder strings.Builder
	f.colors["white"].Fprintf(&builder, "Found %d phone number(s) in %d source(s):\n\n", total, len(results))

	for _, result := range results {
		if len(result.Matches) == 0 {
			continue
		}
		f.colors["cyan"].Fprintf(&builder, "%s\n", result.Source)
		for _, match := range result.Matches {
			if options.Verbose {
				f.appendDetailedMatch(&builder, match)
			} else {
				f.appendSummaryLine(&builder, match)
			}
		}
		builder.WriteString("\n")
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

// appendSummaryLine prints one match per line: its byte range, the raw
// matched text, and its canonical formatted form.
func (f *Formatter) appendSummaryLine(builder *strings.Builder, match *matcher.PhoneMatch) {
	f.colors["green"].Fprintf(builder, "  [%d-%d] ", match.Start, match.End())
	fmt.Fprintf(builder, "%q", match.RawString)
	if match.Number != nil {
		fmt.Fprintf(builder, " -> %s", phonelib.FormatRFC3966(match.Number))
	}
	builder.WriteString("\n")
}

// appendDetailedMatch prints a multi-line block per match, with the
// national significant number and region broken out.
func (f *Formatter) appendDetailedMatch(builder *strings.Builder, match *matcher.PhoneMatch) {
	f.colors["green"].Fprintf(builder, "  Match at [%d-%d]\n", match.Start, match.End())
	fmt.Fprintf(builder, "    Raw:    %q\n", match.RawString)
	if match.Number != nil {
		fmt.Fprintf(builder, "    Number: %s\n", phonelib.FormatRFC3966(match.Number))
		fmt.Fprintf(builder, "    NSN:    %s\n", phonelib.NationalSignificantNumber(match.Number))
		if region := phonelib.RegionCodeForCountryCode(int(match.Number.GetCountryCode())); region != "" {
			fmt.Fprintf(builder, "    Region: %s\n", region)
		}
		if ext := phonelib.Extension(match.Number); ext != "" {
			f.colors["yellow"].Fprintf(builder, "    Ext:    %s\n", ext)
		}
	}
}

func init() {
	formatters.Register(NewFormatter())
}
