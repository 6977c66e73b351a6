// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package paths resolves phonehound's configuration directory and file,
// using Go's own per-OS convention (os.UserConfigDir) rather than
// hand-rolled platform branching.
package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns phonehound's configuration directory: the
// PHONEHOUND_CONFIG_DIR override if set, otherwise "phonehound" under the
// OS-appropriate user configuration directory.
func GetConfigDir() string {
	if dir := os.Getenv("PHONEHOUND_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".phonehound"
	}
	return filepath.Join(base, "phonehound")
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}
