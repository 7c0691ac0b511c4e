// Package config provides provider configuration for relay.
//
// Relay looks for a .relay.yaml file in the project root. If found, its
// settings override built-in defaults, and command-line flags override
// both. PRD files supply per-file and per-task overrides on top.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const filename = ".relay.yaml"

// RepoConfig holds project-level relay configuration.
type RepoConfig struct {
	// Provider is the default provider ID
	Provider string `yaml:"provider"`

	// Per-provider model and mode defaults
	ClaudeModel string `yaml:"claude_model"`
	GeminiModel string `yaml:"gemini_model"`
	CursorModel string `yaml:"cursor_model"`
	CursorMode  string `yaml:"cursor_mode"`
	CodexModel  string `yaml:"codex_model"`

	// TimeoutMinutes bounds a single run (0 = built-in default)
	TimeoutMinutes int `yaml:"timeout_minutes"`
}

// Load reads .relay.yaml from dir. Returns a zero-value RepoConfig
// (not an error) if the file doesn't exist.
func Load(dir string) (RepoConfig, error) {
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return RepoConfig{}, nil
		}
		return RepoConfig{}, err
	}

	var cfg RepoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RepoConfig{}, err
	}

	return cfg, nil
}
