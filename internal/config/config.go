package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type HTTPConfig struct {
	TimeoutSec   int    `yaml:"timeout_sec"`
	GithubRepo   string `yaml:"github_repo"`
	ContactEmail string `yaml:"contact_email"`
}

// UserAgent identifies this tool to the service, per its automation guidance.
func (h HTTPConfig) UserAgent() string {
	repo := h.GithubRepo
	if repo == "" {
		repo = "unknown/repo"
	}
	email := h.ContactEmail
	if email == "" {
		email = "unknown@example.com"
	}
	return fmt.Sprintf("github.com/%s by %s", repo, email)
}

type MongoConfig struct {
	Connection string `yaml:"connection"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// StateConfig selects where durable key-value state (cooldown window, solved
// stats) lives. Backend is "file" or "mongo"; scoping state per workspace vs
// globally is purely a matter of which path or database the config points at.
type StateConfig struct {
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"`
	Mongo   MongoConfig `yaml:"mongo"`
}

type Config struct {
	BaseURL    string      `yaml:"base_url"`
	CacheDir   string      `yaml:"cache_dir"`
	SecretsDir string      `yaml:"secrets_dir"`
	State      StateConfig `yaml:"state"`
	HTTP       HTTPConfig  `yaml:"http"`
}

func DefaultConfig() *Config {
	root := defaultRoot()
	return &Config{
		BaseURL:    "https://adventofcode.com",
		CacheDir:   filepath.Join(root, "puzzles"),
		SecretsDir: filepath.Join(root, "secrets"),
		State: StateConfig{
			Backend: "file",
			Path:    filepath.Join(root, "state.json"),
		},
		HTTP: HTTPConfig{
			TimeoutSec: 30,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults stand.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aoc"
	}
	return filepath.Join(home, ".aoc")
}
