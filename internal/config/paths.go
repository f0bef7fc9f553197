// ABOUTME: Standard filesystem paths for scaffold configuration
// ABOUTME: Resolves ~/.scaffold/ for the global settings file

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".scaffold"

// GlobalDir returns the user-global config directory (~/.scaffold/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// SettingsFile returns the path to the global settings file.
func SettingsFile() string {
	return filepath.Join(GlobalDir(), "settings.yaml")
}
