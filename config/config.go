/*
Package config loads server configuration from a YAML file.

PURPOSE:
  Centralizes the runtime knobs of the API server. Everything has a
  sensible default so the binary runs with no config file at all; a YAML
  file overrides selectively, and flags in cmd/server override the file.

EXAMPLE:
  addr: ":8080"
  database_path: "./data/compliance.db"
  cors_allowed_origins:
    - "https://app.example.com"
  limits_document: "./limits-2027.json"
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// DatabasePath is the SQLite file location; ":memory:" is accepted.
	DatabasePath string `yaml:"database_path"`
	// CORSAllowedOrigins restricts browser origins; empty means allow all.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	// LimitsDocument optionally points at an external yearly-limits JSON
	// document replacing the built-in table.
	LimitsDocument string `yaml:"limits_document"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:         ":8080",
		DatabasePath: "./data/compliance.db",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = Default().DatabasePath
	}
	return cfg, nil
}
