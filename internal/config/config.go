// Package config loads settings from defaults, an optional TOML file and
// command-line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Delete modes.
const (
	DeleteByID   = "id"
	DeleteByText = "text" // legacy: removes every row with the same text
)

var (
	drivers     = []string{"sqlite", "sqlite3"}
	deleteModes = []string{DeleteByID, DeleteByText}
	themes      = []string{"classic", "neon", "mono"}
)

// Config is the full application configuration.
type Config struct {
	DBPath        string `toml:"db_path"`
	Driver        string `toml:"driver"`
	SchemaVersion int    `toml:"schema_version"`
	DeleteMode    string `toml:"delete_mode"`
	Theme         string `toml:"theme"`
	Log           Log    `toml:"log"`
}

// Log controls where lgr output goes.
type Log struct {
	Enabled    bool   `toml:"enabled"`
	Debug      bool   `toml:"debug"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"` // megabytes
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"` // days
	Compress   bool   `toml:"compress"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:        "TodoList.db",
		Driver:        "sqlite",
		SchemaVersion: 1,
		DeleteMode:    DeleteByID,
		Theme:         "classic",
		Log: Log{
			MaxSize:    10,
			MaxBackups: 3,
		},
	}
}

// Load returns defaults overlaid with the TOML file at path.
// An empty path falls back to DefaultPath, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/todo/config.toml or the OS equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.toml")
}

// Validate checks enumerated values and numeric bounds.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path is empty", ErrInvalid)
	}
	if !slices.Contains(drivers, c.Driver) {
		return fmt.Errorf("%w: driver %q, want one of %v", ErrInvalid, c.Driver, drivers)
	}
	if c.SchemaVersion <= 0 {
		return fmt.Errorf("%w: schema_version must be positive, got %d", ErrInvalid, c.SchemaVersion)
	}
	if !slices.Contains(deleteModes, c.DeleteMode) {
		return fmt.Errorf("%w: delete_mode %q, want one of %v", ErrInvalid, c.DeleteMode, deleteModes)
	}
	if !slices.Contains(themes, c.Theme) {
		return fmt.Errorf("%w: theme %q, want one of %v", ErrInvalid, c.Theme, themes)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("%w: log rotation values must not be negative", ErrInvalid)
	}
	return nil
}
