package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/vlist/internal/log"
)

// Config holds viewer settings stored at ~/.vlist/config.yaml.
type Config struct {
	ItemExtent int    `yaml:"item_extent"`
	Margin     *int   `yaml:"margin,omitempty"`
	Theme      string `yaml:"theme"`
	VimKeys    bool   `yaml:"vim_keys"`
	LogFile    string `yaml:"log_file,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		ItemExtent: 1,
		Theme:      "dark",
		VimKeys:    true,
		LogLevel:   "info",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vlist", "config.yaml")
}

// Load reads and parses the config file. Fields missing from the file keep
// their defaults. Returns an error wrapping os.ErrNotExist if there is no
// file.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm&0022 != 0 {
		return nil, fmt.Errorf("config permissions too open: %04o (must not be group/world writable)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault returns Default when the file does not exist.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.ItemExtent <= 0 {
		return fmt.Errorf("config item_extent must be positive, got %d", c.ItemExtent)
	}
	if c.Margin != nil && *c.Margin < 0 {
		return fmt.Errorf("config margin must not be negative, got %d", *c.Margin)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("config theme %q: want dark or light", c.Theme)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	return nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
