package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cipherward.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "guide: cnsa\nexpiry: 2030\nsecurity-level: 192\nverbose: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Guide != "cnsa" {
		t.Errorf("Guide = %q, want %q", cfg.Guide, "cnsa")
	}
	if cfg.Expiry != 2030 {
		t.Errorf("Expiry = %d, want 2030", cfg.Expiry)
	}
	if cfg.SecurityLevel != 192 {
		t.Errorf("SecurityLevel = %d, want 192", cfg.SecurityLevel)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg.Guide != "bsi" {
		t.Errorf("Guide = %q, want default %q", cfg.Guide, "bsi")
	}
	if cfg.Expiry != uint16(time.Now().Year()) {
		t.Errorf("Expiry = %d, want current year", cfg.Expiry)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "verbose: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Guide != "bsi" {
		t.Errorf("Guide = %q, want default %q", cfg.Guide, "bsi")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "guide: bsi\nguidline: nist\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() with unknown field = nil error, want error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "guide: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML = nil error, want error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Guide = "pci"
	var cfgErr *ConfigError
	if err := cfg.Validate(); !errors.As(err, &cfgErr) {
		t.Errorf("Validate() error = %v, want *ConfigError", err)
	} else if cfgErr.Field != "guide" {
		t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, "guide")
	}

	cfg = Default()
	cfg.Expiry = 1200
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with implausible year = nil error, want error")
	}
}
