// Package config loads render settings from an optional JSON file and
// merges CLI flag overrides and defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	TextureDir string `json:"texture_dir"`
	Output     string `json:"output"`

	// Render settings
	Width       int `json:"width"`
	Height      int `json:"height"`
	Supersample int `json:"supersample"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextureDir  string
	Output      string
	Width       int
	Height      int
	Supersample int
}

// Resolve applies flag overrides, then fills remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	if c.TextureDir == "" {
		c.TextureDir = "textures"
	}
	if c.Output == "" {
		c.Output = "scene.webp"
	}
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 540
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}
