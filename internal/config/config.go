package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"chord/internal/parse"
	"chord/internal/render"
)

// Config holds the command-line defaults read from config.toml.
type Config struct {
	Format   string `toml:"format"`
	MaxDepth int    `toml:"max_depth"`
	MaxRange int    `toml:"max_range"`
	Color    bool   `toml:"color"`
	History  string `toml:"history"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   render.FormatTree,
		MaxDepth: parse.DefaultMaxDepth,
		MaxRange: parse.DefaultMaxRange,
		History:  defaultHistory(),
	}
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".chord_history")
}

// Directory returns the chord configuration directory.
func Directory() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chord"), nil
}

// File returns the default configuration file path.
func File() (string, error) {
	dir, err := Directory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping fields the data does not set.
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !render.IsFormat(c.Format) {
		return fmt.Errorf("unknown format %q (want one of %v)", c.Format, render.Formats())
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxRange <= 0 {
		return fmt.Errorf("max_range must be positive, got %d", c.MaxRange)
	}
	return nil
}
