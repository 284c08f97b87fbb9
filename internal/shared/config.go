package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Ledger   LedgerConfig   `toml:"ledger"`
	Studio   StudioConfig   `toml:"studio"`
}

// DatabaseConfig contains SQLite storage settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LedgerConfig contains payment ledger storage settings.
//
// The ledger lives outside the main database on purpose: payment history
// survives database clear/import operations.
type LedgerConfig struct {
	Dir string `toml:"dir"`
}

// StudioConfig contains business defaults applied to new records.
type StudioConfig struct {
	DefaultRate float64 `toml:"default_rate"`
	DefaultType string  `toml:"default_type"`
	Seed        bool    `toml:"seed"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyDefaults()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills zero-valued fields with usable paths and rates so a
// partial config file still produces a working setup.
func (c *Config) applyDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(home, ".zakbeatz", "studio.db")
	}
	if c.Ledger.Dir == "" {
		c.Ledger.Dir = filepath.Join(filepath.Dir(c.Database.Path), "ledger")
	}
	if c.Studio.DefaultRate == 0 {
		c.Studio.DefaultRate = 50
	}
	if c.Studio.DefaultType == "" {
		c.Studio.DefaultType = "pacote_horas"
	}
}
