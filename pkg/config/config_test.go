package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Comparator != Bytewise {
		t.Errorf("expected comparator %q, got %q", Bytewise, cfg.Comparator)
	}
	if cfg.StrictMode {
		t.Errorf("expected StrictMode false by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidateRejectsUnknownValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Comparator = "nonsense"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for unknown comparator")
	}

	cfg = NewDefaultConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for unknown log level")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blockdump.json")
	if err := os.WriteFile(path, []byte(`{"comparator":"reverse","strict_mode":true,"log_level":"debug"}`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Comparator != Reverse {
		t.Errorf("expected reverse comparator, got %q", cfg.Comparator)
	}
	if !cfg.StrictMode {
		t.Errorf("expected strict mode true")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
