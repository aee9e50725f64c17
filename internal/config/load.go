package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the scene cannot be built from.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("invalid clip planes near=%g far=%g", c.Graphics.Near, c.Graphics.Far)
	}
	if c.Terrain.CellsX <= 0 || c.Terrain.CellsZ <= 0 {
		return fmt.Errorf("invalid terrain grid %dx%d", c.Terrain.CellsX, c.Terrain.CellsZ)
	}
	if c.Terrain.CellSize <= 0 {
		return fmt.Errorf("invalid terrain cell size %g", c.Terrain.CellSize)
	}
	if c.Models.Cube.SpinStep <= 0 {
		return fmt.Errorf("invalid cube spin step %g: must be positive", c.Models.Cube.SpinStep)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "TerrainScene")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "TerrainScene")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "terrain-scene")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "terrain-scene")
	}
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
