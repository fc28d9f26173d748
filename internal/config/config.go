// Package config loads the lineage CLI configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "LINEAGE_CONFIG"

// Config holds the complete CLI configuration
type Config struct {
	Parse ParseConfig `toml:"parse"`
	Log   LogConfig   `toml:"log"`
	Store StoreConfig `toml:"store"`
}

// ParseConfig holds parser settings
type ParseConfig struct {
	Verbose bool `toml:"verbose"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// StoreConfig holds SQLite export settings
type StoreConfig struct {
	Path    string   `toml:"path"`
	Timeout Duration `toml:"timeout"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// Discover loads the file named by $LINEAGE_CONFIG, then
// ~/.config/lineage/config.toml. With neither present it returns Default.
func Discover() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "lineage", "config.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.Path == "" {
		c.Store.Path = "lineage.db"
	}
	if c.Store.Timeout.Duration == 0 {
		c.Store.Timeout.Duration = 5 * time.Minute
	}
}

func (c *Config) expandEnvVars() {
	c.Store.Path = os.ExpandEnv(c.Store.Path)
}
