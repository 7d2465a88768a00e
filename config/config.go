// Package config loads the framework's TOML configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the root of the configuration file.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Assets  AssetsConfig  `toml:"assets"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig controls the window and logical screen size.
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// AssetsConfig locates the content directories.
type AssetsConfig struct {
	Dir       string `toml:"dir"`       // images and atlas sidecars
	Templates string `toml:"templates"` // YAML entity templates
	Scripts   string `toml:"scripts"`   // Lua level scripts
}

// AudioConfig controls playback.
type AudioConfig struct {
	Music  string  `toml:"music"` // background track, empty disables
	Volume float64 `toml:"volume"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads and parses a config file, applying defaults for anything the
// file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file overrides it.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "odingame",
			Width:  960,
			Height: 540,
		},
		Assets: AssetsConfig{
			Dir:       "assets",
			Templates: "data/templates",
			Scripts:   "data/scripts",
		},
		Audio: AudioConfig{
			Volume: 0.8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
