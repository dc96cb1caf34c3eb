package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"substation/internal/config"
)

func TestReadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Read("")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCatalog := filepath.Join(tempHome, ".local", "share", "substation", "catalog.db")
	if cfg.Paths.CatalogPath != wantCatalog {
		t.Fatalf("unexpected catalog path: got %q want %q", cfg.Paths.CatalogPath, wantCatalog)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, ".local", "share", "substation", "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if !cfg.Output.AutoFill {
		t.Fatal("expected auto_fill enabled by default")
	}
	if cfg.Output.BOM != "preserve" {
		t.Fatalf("unexpected bom policy: %q", cfg.Output.BOM)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Load.StrictTags {
		t.Fatal("expected strict_tags disabled by default")
	}
}

func TestReadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[load]
strict_tags = true
event_fields = ["Start", " End ", ""]

[output]
auto_fill = false
bom = "Never"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected config found at %q", path)
	}
	if !cfg.Load.StrictTags {
		t.Fatal("expected strict_tags true")
	}
	if len(cfg.Load.EventFields) != 2 || cfg.Load.EventFields[1] != "End" {
		t.Fatalf("expected trimmed event fields, got %v", cfg.Load.EventFields)
	}
	if cfg.Output.AutoFill {
		t.Fatal("expected auto_fill false")
	}
	if cfg.Output.BOM != "never" {
		t.Fatalf("expected lowered bom policy, got %q", cfg.Output.BOM)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestReadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[output]\nbom = \"maybe\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Read(path)
	if err == nil || !strings.Contains(err.Error(), "output.bom") {
		t.Fatalf("expected bom validation error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Read(path)
	if err != nil {
		t.Fatalf("Read sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	defaults := config.Default()
	if cfg.Output.BOM != defaults.Output.BOM || cfg.Logging.Level != defaults.Logging.Level {
		t.Fatalf("sample drifted from defaults: %+v", cfg)
	}
}
