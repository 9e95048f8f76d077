package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg.Gap != 4 || cfg.Logo != "auto" || cfg.Placeholder != "Unknown" || cfg.NoColor {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Gap != 4 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
gap: 2
logo: compact
no_color: true
placeholder: "N/A"
`
	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gap != 2 {
		t.Errorf("Gap = %d, want 2", cfg.Gap)
	}
	if cfg.Logo != "compact" {
		t.Errorf("Logo = %q, want compact", cfg.Logo)
	}
	if !cfg.NoColor {
		t.Error("NoColor not applied")
	}
	if cfg.Placeholder != "N/A" {
		t.Errorf("Placeholder = %q, want N/A", cfg.Placeholder)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("gap: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gap != 8 {
		t.Errorf("Gap = %d, want 8", cfg.Gap)
	}
	if cfg.Logo != "auto" || cfg.Placeholder != "Unknown" {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("gap: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configFile); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadUnknownLogo(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("logo: sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configFile); err == nil {
		t.Fatal("expected error for unknown logo variant")
	}
}

func TestLoadNegativeGapClamped(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("gap: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gap != 0 {
		t.Errorf("Gap = %d, want 0 after clamping", cfg.Gap)
	}
}
