// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders scan results (one []matcher.PhoneMatch per
// input, keyed by source name) through a registry of pluggable output
// formats, the way a CLI scanner typically lets callers choose text, JSON,
// or another rendering of the same underlying results.
package formatters

import (
	"fmt"
	"strings"

	"phonehound/internal/matcher"
)

// Result pairs one scanned source (a file path, "-" for stdin, or any
// caller-chosen label) with the matches found in it.
type Result struct {
	Source  string
	Matches []*matcher.PhoneMatch
}

// FormatterOptions defines configuration options for formatters.
type FormatterOptions struct {
	Verbose bool // Whether to display detailed information
	NoColor bool // Whether to disable colored output
}

// Formatter is implemented by every output format phonehound supports.
type Formatter interface {
	// Format renders results according to the formatter's output format.
	Format(results []Result, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text").
	Name() string

	// Description returns a brief description of what this formatter outputs.
	Description() string

	// FileExtension returns the recommended file extension for this format.
	FileExtension() string
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new, empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names.
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// GetAll returns all registered formatters.
func (r *Registry) GetAll() map[string]Formatter {
	result := make(map[string]Formatter)
	for name, formatter := range r.formatters {
		result[name] = formatter
	}
	return result
}

// DefaultRegistry is the global formatter registry each formatter
// subpackage self-registers into from an init function.
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the
// default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default
// registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default
// registry.
func List() []string {
	return DefaultRegistry.List()
}

// Export renders results with the named formatter.
func Export(format string, results []Result, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		availableFormats := List()
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(availableFormats, ", "))
	}
	return formatter.Format(results, options)
}
