// ABOUTME: Tests for settings loading: present, missing, and malformed files
// ABOUTME: Uses t.TempDir fixtures

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ReadsValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "template: custom.template\noutput: .env.local\nno_color: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Template != "custom.template" {
		t.Errorf("Template = %q", s.Template)
	}
	if s.Output != ".env.local" {
		t.Errorf("Output = %q", s.Output)
	}
	if !s.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestLoad_MissingFileIsZeroSettings(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Template != "" || s.Output != "" || s.NoColor {
		t.Errorf("missing file yielded non-zero settings: %+v", s)
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("template: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load succeeded on malformed YAML")
	}
}

func TestSettingsFile_UnderGlobalDir(t *testing.T) {
	t.Parallel()

	if !strings.HasSuffix(SettingsFile(), filepath.Join(globalDirName, "settings.yaml")) {
		t.Errorf("SettingsFile = %q", SettingsFile())
	}
}
