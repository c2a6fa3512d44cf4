package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/carousel/internal/playlist"
)

// Config holds user settings read from TOML.
type Config struct {
	Icons         string   `koanf:"icons"`         // "nerd", "unicode", or "none"
	Sources       []string `koanf:"sources"`       // paths imported into the playlist at startup
	Sort          string   `koanf:"sort"`          // initial sort: "title", "duration" or empty
	Notifications bool     `koanf:"notifications"` // desktop "now playing" notifications
}

// Load reads the user and local config files. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files override earlier ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i, src := range cfg.Sources {
		cfg.Sources[i] = ExpandPath(src)
	}
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))

	return cfg, nil
}

// SortCriterion returns the configured initial sort, or SortNone.
func (c *Config) SortCriterion() playlist.Criterion {
	return playlist.ParseCriterion(c.Sort)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/carousel/config.toml
		filepath.Join(xdg.ConfigHome, "carousel", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// ExpandPath replaces a leading ~ or ~/ with the home directory.
// Other users' homes (~name) are left as is.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[1:])
	}
	return path
}
