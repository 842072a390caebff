package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "moodmix.db" {
			t.Errorf("expected database path moodmix.db, got %s", config.Database.Path)
		}

		if config.Generation.DailySeconds != 30 {
			t.Errorf("expected daily clip length 30, got %d", config.Generation.DailySeconds)
		}

		if config.Generation.WeeklySeconds != 90 {
			t.Errorf("expected weekly mix length 90, got %d", config.Generation.WeeklySeconds)
		}

		if config.Credentials.Gemini.Model != "gemini-2.5-flash" {
			t.Errorf("expected gemini model gemini-2.5-flash, got %s", config.Credentials.Gemini.Model)
		}

		if config.Credentials.Stability.BaseURL != "https://api.stability.ai" {
			t.Errorf("expected stability base URL https://api.stability.ai, got %s", config.Credentials.Stability.BaseURL)
		}

		if config.Credentials.Stability.APIKey != "" {
			t.Error("default config must not ship an API key")
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
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/journal.db"
max_open_conns = 20
max_idle_conns = 10

[credentials.stability]
api_key = "sk-test"
base_url = "http://localhost:9090"

[credentials.gemini]
api_key = "gm-test"
model = "gemini-2.5-flash"
base_url = "http://localhost:9091"

[generation]
daily_seconds = 15
weekly_seconds = 45
rate_limit = 1.0
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/journal.db" {
			t.Errorf("expected custom database path, got %s", config.Database.Path)
		}
		if config.Credentials.Stability.APIKey != "sk-test" {
			t.Errorf("expected stability api key sk-test, got %s", config.Credentials.Stability.APIKey)
		}
		if config.Generation.DailySeconds != 15 {
			t.Errorf("expected daily_seconds 15, got %d", config.Generation.DailySeconds)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfig Malformed TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := os.WriteFile(configPath, []byte("[credentials\nbroken"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}
