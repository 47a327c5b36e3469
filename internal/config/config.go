package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables that override config file settings.
const (
	EnvConfig = "TELEPROJ_CONFIG"
	EnvStore  = "TELEPROJ_STORE"
)

// DefaultStorePath is where the project list lives unless configured otherwise.
const DefaultStorePath = "~/.teleproj.toml"

// ThemeConfig selects the color theme for listings and the picker.
type ThemeConfig struct {
	Name    string `toml:"name"`    // preset: default, none, nord, dracula
	Primary string `toml:"primary"` // optional color overrides
	Accent  string `toml:"accent"`
	Muted   string `toml:"muted"`
	Warning string `toml:"warning"`
}

// Config holds the teleproj configuration
type Config struct {
	StorePath    string      `toml:"store_path"`
	CheckMissing bool        `toml:"check_missing"` // mark saved paths that no longer exist in --list
	Theme        ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		StorePath:    DefaultStorePath,
		CheckMissing: true,
		Theme:        ThemeConfig{Name: "default"},
	}
}

// StoreFile returns the store path with ~ expanded.
func (c *Config) StoreFile() (string, error) {
	path := c.StorePath
	if path == "" {
		path = DefaultStorePath
	}
	return expandPath(path)
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the config file location.
// TELEPROJ_CONFIG takes precedence over ~/.config/teleproj/config.toml
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "teleproj", "config.toml"), nil
}

// Load reads config from the default location and applies env overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return withEnv(Default())
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path and applies env overrides.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withEnv(cfg)
		}
		return fallback(fmt.Errorf("failed to read config file: %w", err))
	}

	// Decode over the defaults so absent keys keep their default value.
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return fallback(fmt.Errorf("failed to parse config file: %w", err))
	}

	if err := cfg.validate(); err != nil {
		return fallback(err)
	}

	return withEnv(cfg)
}

func (c *Config) validate() error {
	if err := ValidatePath(c.StorePath, "store_path"); err != nil {
		return err
	}
	return validateEnum(c.Theme.Name, "theme.name", ValidThemeNames)
}

// withEnv applies environment overrides to cfg.
func withEnv(cfg Config) (Config, error) {
	if p := os.Getenv(EnvStore); p != "" {
		if err := ValidatePath(p, EnvStore); err != nil {
			return fallback(err)
		}
		cfg.StorePath = p
	}
	return cfg, nil
}

// fallback returns the defaults (with env overrides when they are valid)
// alongside err, so callers can warn and continue.
func fallback(err error) (Config, error) {
	cfg := Default()
	if p := os.Getenv(EnvStore); p != "" && ValidatePath(p, EnvStore) == nil {
		cfg.StorePath = p
	}
	return cfg, err
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns Default() if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
