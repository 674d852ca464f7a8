package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "reposicion_data.db" {
		t.Fatalf("db default: %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level default: %q", cfg.Log.Level)
	}
	if cfg.Lookup.Seed != 0 {
		t.Fatalf("seed default: %d", cfg.Lookup.Seed)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asistente.yaml")
	body := `
database:
  path: /tmp/items.db
report:
  output_dir: /tmp/reports
lookup:
  seed: 42
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/items.db" {
		t.Fatalf("db path: %q", cfg.Database.Path)
	}
	if cfg.Report.OutputDir != "/tmp/reports" {
		t.Fatalf("report dir: %q", cfg.Report.OutputDir)
	}
	if cfg.Lookup.Seed != 42 {
		t.Fatalf("seed: %d", cfg.Lookup.Seed)
	}
	// Unset fields keep their defaults.
	if cfg.Headcount.Roster != "hdc.xlsx" {
		t.Fatalf("roster default: %q", cfg.Headcount.Roster)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASISTENTE_DB", "/env/items.db")
	t.Setenv("ASISTENTE_SEED", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/env/items.db" {
		t.Fatalf("env db override: %q", cfg.Database.Path)
	}
	if cfg.Lookup.Seed != 7 {
		t.Fatalf("env seed override: %d", cfg.Lookup.Seed)
	}
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("database: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
