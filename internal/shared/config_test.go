package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path == "" {
			t.Error("expected a default database path")
		}

		if config.Ledger.Dir == "" {
			t.Error("expected a default ledger dir")
		}

		if config.Studio.DefaultRate != 50 {
			t.Errorf("expected default rate 50, got %v", config.Studio.DefaultRate)
		}

		if config.Studio.DefaultType != "pacote_horas" {
			t.Errorf("expected default type pacote_horas, got %s", config.Studio.DefaultType)
		}

		if !config.Studio.Seed {
			t.Error("expected seeding enabled by default")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Studio.DefaultRate != defaultConfig.Studio.DefaultRate {
			t.Errorf("created config default rate doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/studio.db"

[ledger]
dir = "/custom/ledger"

[studio]
default_rate = 62.5
default_type = "mixagem"
seed = false
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/studio.db" {
			t.Errorf("expected database path /custom/studio.db, got %s", config.Database.Path)
		}

		if config.Ledger.Dir != "/custom/ledger" {
			t.Errorf("expected ledger dir /custom/ledger, got %s", config.Ledger.Dir)
		}

		if config.Studio.DefaultRate != 62.5 {
			t.Errorf("expected default rate 62.5, got %v", config.Studio.DefaultRate)
		}

		if config.Studio.Seed {
			t.Error("expected seeding disabled")
		}
	})

	t.Run("LoadConfig fills gaps", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := os.WriteFile(configPath, []byte("[studio]\ndefault_rate = 10.0\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path == "" {
			t.Error("expected database path to be defaulted")
		}

		if config.Studio.DefaultType != "pacote_horas" {
			t.Errorf("expected default type pacote_horas, got %s", config.Studio.DefaultType)
		}
	})
}
