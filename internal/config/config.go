// Package config loads the tool's settings from an optional TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings holds all configuration options. Every field has a working
// default; a config file only needs to name what it changes.
type Settings struct {
	// CoverSize is the bounding box for standard covers, in pixels.
	CoverSize int `koanf:"cover_size"`

	// CoverVWSize is the bounding box for car-safe covers, in pixels.
	CoverVWSize int `koanf:"cover_vw_size"`

	// JPEGQuality applies to every JPEG the tool encodes (1-100).
	JPEGQuality int `koanf:"jpeg_quality"`

	// Workers bounds the number of tracks processed concurrently.
	Workers int `koanf:"workers"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CoverSize:   1000,
		CoverVWSize: 300,
		JPEGQuality: 90,
		Workers:     4,
	}
}

// Load reads settings from path, or from the default locations when
// path is empty (~/.config/maestro/config.toml, then ./config.toml,
// last wins). Missing files are not an error; defaults apply.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	paths := []string{path}
	if path == "" {
		paths = defaultPaths()
	}

	for _, candidate := range paths {
		if _, err := os.Stat(candidate); err != nil {
			// An explicitly named file must exist.
			if candidate == path {
				return nil, err
			}
			continue
		}
		if err := k.Load(file.Provider(candidate), toml.Parser()); err != nil {
			return nil, err
		}
	}

	settings := DefaultSettings()
	if err := k.Unmarshal("", settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func defaultPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "maestro", "config.toml"))
	}
	return append(paths, "config.toml")
}
