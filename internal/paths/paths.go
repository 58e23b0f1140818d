// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package paths resolves where fixmytime keeps its configuration.
package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the fixmytime configuration directory.
// FIXMYTIME_CONFIG_DIR overrides the platform default.
func GetConfigDir() string {
	if dir := os.Getenv("FIXMYTIME_CONFIG_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fixmytime")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".fixmytime")
}

// GetProfilesFile returns the path to the matter profiles file in the
// standard configuration directory.
func GetProfilesFile() string {
	return filepath.Join(GetConfigDir(), "profiles.yaml")
}
