// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command phonehound scans one or more text files (or stdin) for phone
// numbers and reports them in the requested output format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"phonehound/internal/config"
	"phonehound/internal/formatters"
	_ "phonehound/internal/formatters/json"
	_ "phonehound/internal/formatters/text"
	"phonehound/internal/matcher"
	"phonehound/internal/observability"
	"phonehound/internal/parallel"
	"phonehound/internal/version"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("phonehound", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := config.LoadConfigOrDefault("")

	var (
		configPath = fs.String("config", "", "path to a config file (overrides the standard search locations)")
		region     = fs.String("region", cfg.Defaults.PreferredRegion, "preferred region for parsing numbers without an explicit country code")
		leniency   = fs.String("leniency", cfg.Defaults.Leniency, "verification tier: POSSIBLE, VALID, STRICT_GROUPING, or EXACT_GROUPING")
		maxTries   = fs.Int("max-tries", cfg.Defaults.MaxTries, "maximum number of candidate attempts per scan")
		format     = fs.String("format", cfg.Defaults.Format, "output format (text, json)")
		workers    = fs.Int("workers", runtime.NumCPU(), "number of files to scan concurrently")
		noColor    = fs.Bool("no-color", cfg.Defaults.NoColor, "disable colorized text output")
		profile    = fs.String("profile", "", "named profile from the config file to apply before flag overrides")
		debug      = fs.Bool("debug", false, "emit structured debug observability to stderr")
		showVer    = fs.Bool("version", false, "print version information and exit")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVer {
		fmt.Fprintln(stdout, version.Info())
		return 0
	}

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "phonehound: %v\n", err)
			return 1
		}
		cfg = loaded
		d := cfg.Defaults
		*region, *leniency, *maxTries, *format, *noColor = d.PreferredRegion, d.Leniency, d.MaxTries, d.Format, d.NoColor
	}

	if *profile != "" {
		p := cfg.GetProfile(*profile)
		if p == nil {
			fmt.Fprintf(stderr, "phonehound: unknown profile %q\n", *profile)
			return 1
		}
		*region, *leniency, *maxTries, *format, *noColor = p.PreferredRegion, p.Leniency, p.MaxTries, p.Format, p.NoColor
	}

	if *configPath != "" || *profile != "" {
		// Parse again so flags given on the command line win over the
		// config file's defaults and the profile.
		if err := fs.Parse(args); err != nil {
			return 2
		}
	}

	leniencyLevel, err := parseLeniency(*leniency)
	if err != nil {
		fmt.Fprintf(stderr, "phonehound: %v\n", err)
		return 2
	}

	color.NoColor = *noColor

	var (
		observer  *observability.StandardObserver
		debugObs  *observability.DebugObserver
		finishRun func(bool, string)
	)
	if *debug {
		debugObs = observability.NewDebugObserver(stderr)
		observer = debugObs.StandardObserver
	} else {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, stderr)
	}

	sources := fs.Args()
	jobs, err := buildJobs(sources, stdin, *region, leniencyLevel, *maxTries)
	if err != nil {
		fmt.Fprintf(stderr, "phonehound: %v\n", err)
		return 1
	}

	if debugObs != nil {
		finishRun = debugObs.StartStep("cli", "scan", fmt.Sprintf("%d source(s)", len(jobs)))
		debugObs.LogMetric("cli", "workers", *workers)
		debugObs.LogMetric("cli", "leniency", *leniency)
	}

	results := parallel.ScanAll(jobs, *workers, observer)

	if finishRun != nil {
		finishRun(true, fmt.Sprintf("%d source(s) scanned", len(results)))
	}

	rendered := make([]formatters.Result, 0, len(results))
	for _, r := range results {
		rendered = append(rendered, formatters.Result{Source: r.Source, Matches: r.Matches})
	}

	output, err := formatters.Export(*format, rendered, formatters.FormatterOptions{NoColor: *noColor})
	if err != nil {
		fmt.Fprintf(stderr, "phonehound: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, output)
	return 0
}

func buildJobs(sources []string, stdin io.Reader, region string, leniency matcher.Leniency, maxTries int) ([]*parallel.Job, error) {
	if len(sources) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []*parallel.Job{{
			Source:          "-",
			Text:            string(data),
			PreferredRegion: region,
			Leniency:        leniency,
			MaxTries:        maxTries,
		}}, nil
	}

	jobs := make([]*parallel.Job, 0, len(sources))
	for _, source := range sources {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		jobs = append(jobs, &parallel.Job{
			Source:          source,
			Text:            string(data),
			PreferredRegion: region,
			Leniency:        leniency,
			MaxTries:        maxTries,
		})
	}
	return jobs, nil
}

func parseLeniency(name string) (matcher.Leniency, error) {
	switch name {
	case "POSSIBLE":
		return matcher.Possible, nil
	case "VALID":
		return matcher.Valid, nil
	case "STRICT_GROUPING":
		return matcher.StrictGrouping, nil
	case "EXACT_GROUPING":
		return matcher.ExactGrouping, nil
	default:
		return 0, fmt.Errorf("unknown leniency %q (want POSSIBLE, VALID, STRICT_GROUPING, or EXACT_GROUPING)", name)
	}
}
