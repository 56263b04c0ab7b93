package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"aoc_companion/internal/config"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL != "https://adventofcode.com" {
		t.Fatalf("unexpected default base URL %q", cfg.BaseURL)
	}
	if cfg.State.Backend != "file" {
		t.Fatalf("unexpected default state backend %q", cfg.State.Backend)
	}
	if cfg.HTTP.TimeoutSec != 30 {
		t.Fatalf("unexpected default timeout %d", cfg.HTTP.TimeoutSec)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
base_url: https://example.test
cache_dir: /tmp/puzzles
state:
  backend: mongo
  mongo:
    connection: mongodb://localhost:27017
    database: aoc
http:
  timeout_sec: 5
  github_repo: someone/aoc
  contact_email: someone@example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL != "https://example.test" {
		t.Fatalf("base_url not applied: %q", cfg.BaseURL)
	}
	if cfg.State.Backend != "mongo" || cfg.State.Mongo.Database != "aoc" {
		t.Fatalf("state config not applied: %+v", cfg.State)
	}
	if cfg.HTTP.UserAgent() != "github.com/someone/aoc by someone@example.com" {
		t.Fatalf("unexpected user agent %q", cfg.HTTP.UserAgent())
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestUserAgentFallsBackToPlaceholders(t *testing.T) {
	var h config.HTTPConfig
	if h.UserAgent() != "github.com/unknown/repo by unknown@example.com" {
		t.Fatalf("unexpected fallback user agent %q", h.UserAgent())
	}
}
