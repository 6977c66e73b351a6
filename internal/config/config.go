// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads phonehound's CLI defaults and named scan profiles
// from a YAML file, falling back to built-in defaults when none is found.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"phonehound/internal/paths"
)

// Config represents phonehound's CLI configuration.
type Config struct {
	// Defaults holds the settings used when no profile and no flag override
	// them.
	Defaults struct {
		PreferredRegion string `yaml:"preferred_region"`
		Leniency        string `yaml:"leniency"`
		MaxTries        int    `yaml:"max_tries"`
		Format          string `yaml:"format"`
		NoColor         bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Profiles are named overrides of Defaults a caller selects by name.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile is a named bundle of scan settings, overriding Config.Defaults
// when selected.
type Profile struct {
	PreferredRegion string `yaml:"preferred_region"`
	Leniency        string `yaml:"leniency"`
	MaxTries        int    `yaml:"max_tries"`
	Format          string `yaml:"format"`
	NoColor         bool   `yaml:"no_color"`
	Description     string `yaml:"description"`
}

// LoadConfig loads configuration from configPath. An empty configPath
// returns the built-in defaults without touching the filesystem.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}
	config.Defaults.PreferredRegion = "US"
	config.Defaults.Leniency = "VALID"
	config.Defaults.MaxTries = 1 << 20
	config.Defaults.Format = "text"
	config.Defaults.NoColor = false

	config.Profiles["quiet"] = Profile{
		PreferredRegion: "US",
		Leniency:        "STRICT_GROUPING",
		MaxTries:        1 << 20,
		Format:          "text",
		NoColor:         true,
		Description:     "Terse output with strict grouping, for scripted pipelines",
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations:
// the current directory, then the OS-appropriate user configuration
// directory. Returns "" if none exists.
func FindConfigFile() string {
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists(".phonehound.yaml") {
		return ".phonehound.yaml"
	}
	if fileExists(".phonehound.yml") {
		return ".phonehound.yml"
	}

	standardConfig := paths.GetConfigFile()
	if fileExists(standardConfig) {
		return standardConfig
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ListProfiles returns the names of every configured profile.
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found.
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns the built-in defaults rather than propagating the error — a
// missing or malformed config file should never stop a scan.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}
