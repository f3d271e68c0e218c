package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://api.darksky.net" {
		t.Errorf("unexpected default base URL %q", cfg.BaseURL)
	}
	if cfg.Units != "auto" {
		t.Errorf("unexpected default units %q", cfg.Units)
	}
	if cfg.Timeout != 10 {
		t.Errorf("unexpected default timeout %d", cfg.Timeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DARKSKY_TOKEN", "env-token")
	t.Setenv("DARKSKY_UNITS", "si")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Token != "env-token" {
		t.Errorf("expected token from environment, got %q", cfg.Token)
	}
	if cfg.Units != "si" {
		t.Errorf("expected units=si from environment, got %q", cfg.Units)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "darksky.yaml")
	contents := "token: file-token\nlanguage: de\nrate_rps: 0.5\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Token != "file-token" {
		t.Errorf("expected token from file, got %q", cfg.Token)
	}
	if cfg.Language != "de" {
		t.Errorf("expected language=de, got %q", cfg.Language)
	}
	if cfg.RateRPS != 0.5 {
		t.Errorf("expected rate_rps=0.5, got %v", cfg.RateRPS)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for explicitly named missing config file")
	}
}
