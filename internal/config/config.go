// Package config assembles the tracker configuration.
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults
//  2. A YAML file (explicit path, or shoestock.yaml when present)
//  3. Environment variables, optionally seeded from a .env file
//  4. Command-line flags, applied by the caller
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the YAML file read when no explicit path is given.
const DefaultFile = "shoestock.yaml"

// Environment variable names.
const (
	EnvInventory = "SHOESTOCK_INVENTORY"
	EnvReload    = "SHOESTOCK_RELOAD"
	EnvJournal   = "SHOESTOCK_JOURNAL"
	EnvLogLevel  = "SHOESTOCK_LOG_LEVEL"
)

// ReloadModes lists the accepted reload policies.
var ReloadModes = []string{"clear", "once", "append"}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the full configuration surface.
type Config struct {
	// InventoryPath is the backing text file.
	InventoryPath string `yaml:"inventory_path"`

	// Reload selects how the store is refreshed on each menu iteration.
	Reload string `yaml:"reload"`

	// JournalPath enables the restock journal when non-empty.
	JournalPath string `yaml:"journal_path"`

	// LogLevel is the minimum diagnostics level.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InventoryPath: "inventory.txt",
		Reload:        "clear",
		LogLevel:      "warn",
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment.
//
// An empty path falls back to DefaultFile, which may be absent. An explicit
// path must exist. A .env file in the working directory is loaded when
// present; variables already set in the environment take precedence over it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed loading .env: %w", err)
	}
	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.InventoryPath = getenvWithDefault(EnvInventory, c.InventoryPath)
	c.Reload = getenvWithDefault(EnvReload, c.Reload)
	c.JournalPath = getenvWithDefault(EnvJournal, c.JournalPath)
	c.LogLevel = getenvWithDefault(EnvLogLevel, c.LogLevel)
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.InventoryPath == "" {
		return errors.New("inventory path must be provided")
	}

	if !slices.Contains(ReloadModes, c.Reload) {
		return fmt.Errorf("invalid reload mode %q: must be one of %v", c.Reload, ReloadModes)
	}

	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q: must be one of %v", c.LogLevel, LogLevels)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
