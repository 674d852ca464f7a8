package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// #region types
// Config is the application configuration, loaded from a YAML file with
// environment overrides on top. Every field has a working default so the
// tool runs without any file at all.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
	Lookup    LookupConfig    `yaml:"lookup"`
	Headcount HeadcountConfig `yaml:"headcount"`
}

type DatabaseConfig struct {
	// Path of the SQLite file backing the item table.
	Path string `yaml:"path"`
}

type ReportConfig struct {
	// OutputDir receives the generated report workbooks.
	OutputDir string `yaml:"output_dir"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
	// Development switches the console core to the human-readable encoder.
	Development bool `yaml:"development"`
}

type LookupConfig struct {
	// Seed for representative selection. 0 means time-seeded.
	Seed int64 `yaml:"seed"`
}

type HeadcountConfig struct {
	// Roster workbook for the headcount tracker.
	Roster string `yaml:"roster"`
}

// #endregion types

// #region defaults

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database:  DatabaseConfig{Path: "reposicion_data.db"},
		Report:    ReportConfig{OutputDir: "."},
		Log:       LogConfig{File: "logs/asistente.log", Level: "info"},
		Headcount: HeadcountConfig{Roster: "hdc.xlsx"},
	}
}

// #endregion defaults

// #region load

// Load reads the configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides (ASISTENTE_DB,
// ASISTENTE_REPORT_DIR, ASISTENTE_LOG, ASISTENTE_LOG_LEVEL, ASISTENTE_SEED,
// ASISTENTE_ROSTER).
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ASISTENTE_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("ASISTENTE_REPORT_DIR"); v != "" {
		cfg.Report.OutputDir = v
	}
	if v := os.Getenv("ASISTENTE_LOG"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("ASISTENTE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ASISTENTE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Lookup.Seed = seed
		}
	}
	if v := os.Getenv("ASISTENTE_ROSTER"); v != "" {
		cfg.Headcount.Roster = v
	}
}

// #endregion load
