package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg != (RepoConfig{}) {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadRepoConfig(t *testing.T) {
	dir := t.TempDir()
	content := `provider: gemini
gemini_model: pro
cursor_mode: plan
timeout_minutes: 10
`
	if err := os.WriteFile(filepath.Join(dir, ".relay.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Provider != "gemini" {
		t.Errorf("expected provider gemini, got %q", cfg.Provider)
	}
	if cfg.GeminiModel != "pro" {
		t.Errorf("expected gemini model pro, got %q", cfg.GeminiModel)
	}
	if cfg.CursorMode != "plan" {
		t.Errorf("expected cursor mode plan, got %q", cfg.CursorMode)
	}
	if cfg.TimeoutMinutes != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.TimeoutMinutes)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".relay.yaml"), []byte("provider: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
