// ABOUTME: Optional user settings loaded from ~/.scaffold/settings.yaml
// ABOUTME: Flags override file values; a missing file is not an error

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds user preferences for the interactive session.
type Settings struct {
	// Template is the default template filename.
	Template string `yaml:"template,omitempty"`
	// Output is the default destination filename offered at the prompt.
	Output string `yaml:"output,omitempty"`
	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Load reads the settings file at path. A missing file yields zero
// Settings with no error; a malformed file is an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}
