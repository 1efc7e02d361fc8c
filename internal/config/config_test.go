package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucrnz/humandur/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Format != "seconds" {
		t.Errorf("Format = %q, want %q", cfg.Format, "seconds")
	}
	if cfg.Syntax != "human" {
		t.Errorf("Syntax = %q, want %q", cfg.Syntax, "human")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate on defaults: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "humandur", config.FileName)

	original := config.DefaultConfig()
	original.Format = "pretty"
	if err := config.Save(path, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Format != "pretty" {
		t.Errorf("Format = %q, want %q", loaded.Format, "pretty")
	}
	if loaded.Syntax != "human" {
		t.Errorf("Syntax = %q, want %q", loaded.Syntax, "human")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("format = \"go\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "go" {
		t.Errorf("Format = %q, want %q", cfg.Format, "go")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"format", config.Config{Format: "csv"}, "unknown format"},
		{"syntax", config.Config{Syntax: "iso8601"}, "unknown syntax"},
		{"log format", config.Config{LogFormat: "xml"}, "unknown log_format"},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %q, want substring %q", tt.name, err.Error(), tt.want)
		}
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("format = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
