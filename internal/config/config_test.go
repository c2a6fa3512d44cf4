//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/carousel/internal/playlist"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "other user unchanged",
			input:    "~bob/x",
			expected: "~bob/x",
		},
		{
			name:     "tilde inside file name unchanged",
			input:    "~music",
			expected: "~music",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandPath(tt.input)
			if result != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if filepath.Base(filepath.Dir(paths[0])) != "carousel" {
		t.Errorf("user config path = %q, want a carousel directory", paths[0])
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
icons = "Unicode"
sources = ["/music/rock", "relative/dir"]
sort = "duration"
notifications = true
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "unicode")
	}
	if len(cfg.Sources) != 2 || cfg.Sources[0] != "/music/rock" {
		t.Errorf("Sources = %v, want [/music/rock relative/dir]", cfg.Sources)
	}
	if got := cfg.SortCriterion(); got != playlist.ByDuration {
		t.Errorf("SortCriterion() = %v, want %v", got, playlist.ByDuration)
	}
	if !cfg.Notifications {
		t.Error("Notifications = false, want true")
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "first.toml", "sort = \"title\"\nicons = \"nerd\"\n")
	second := writeConfig(t, dir, "second.toml", "sort = \"duration\"\n")

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Sort != "duration" {
		t.Errorf("Sort = %q, want %q", cfg.Sort, "duration")
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}
}

func TestLoadFrom_MissingFilesSkipped(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.SortCriterion() != playlist.SortNone {
		t.Errorf("SortCriterion() = %v, want none", cfg.SortCriterion())
	}
	if cfg.Notifications {
		t.Error("Notifications = true, want false")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "sort = [unterminated")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML")
	}
}
