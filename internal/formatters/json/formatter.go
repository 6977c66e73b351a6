// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package json renders scan results as structured JSON, for programmatic
// consumption.
package json

import (
	"encoding/json"
	"fmt"

	"phonehound/internal/formatters"
	"phonehound/internal/matcher"
	"phonehound/internal/phonelib"
)

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// matchRecord is the JSON shape of one PhoneMatch.
type matchRecord struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	RawString string `json:"raw_string"`
	Number    string `json:"number"`
	Region    string `json:"region,omitempty"`
}

// sourceRecord is the JSON shape of one scanned source's results.
type sourceRecord struct {
	Source  string        `json:"source"`
	Matches []matchRecord `json:"matches"`
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	records := make([]sourceRecord, 0, len(results))
	for _, result := range results {
		matches := make([]matchRecord, 0, len(result.Matches))
		for _, m := range result.Matches {
			region := ""
			if m.Number != nil {
				region = phonelibRegion(m.Number.GetCountryCode())
			}
			matches = append(matches, matchRecord{
				Start:     m.Start,
				End:       m.End(),
				RawString: m.RawString,
				Number:    formatNumber(m),
				Region:    region,
			})
		}
		records = append(records, sourceRecord{Source: result.Source, Matches: matches})
	}

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(jsonData), nil
}

func formatNumber(m *matcher.PhoneMatch) string {
	if m.Number == nil {
		return ""
	}
	return phonelib.FormatRFC3966(m.Number)
}

func phonelibRegion(countryCode int32) string {
	return phonelib.RegionCodeForCountryCode(int(countryCode))
}

func init() {
	formatters.Register(NewFormatter())
}
