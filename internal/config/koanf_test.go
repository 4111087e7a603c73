// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Selection.Limit != 5 {
		t.Errorf("Selection.Limit = %d, want 5", cfg.Selection.Limit)
	}
	if cfg.Selection.DefaultRefrigerant != "R404A" {
		t.Errorf("Selection.DefaultRefrigerant = %q, want R404A", cfg.Selection.DefaultRefrigerant)
	}
	if cfg.Selection.DefaultSupplyMethod != "direct-expansion" {
		t.Errorf("Selection.DefaultSupplyMethod = %q, want direct-expansion", cfg.Selection.DefaultSupplyMethod)
	}
	if cfg.Selection.CatalogTimeout != 5*time.Second {
		t.Errorf("Selection.CatalogTimeout = %v, want 5s", cfg.Selection.CatalogTimeout)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/coolerselect.duckdb" {
		t.Errorf("Database.Path = %q, want /data/coolerselect.duckdb", cfg.Database.Path)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be true by default")
	}
	if cfg.Cache.Dir != "" {
		t.Errorf("Cache.Dir = %q, want empty (in-memory)", cfg.Cache.Dir)
	}
	if cfg.Breaker.FailureRatio != 0.6 {
		t.Errorf("Breaker.FailureRatio = %v, want 0.6", cfg.Breaker.FailureRatio)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvValue(t *testing.T) {
	tests := []struct {
		name     string
		wantPath string
	}{
		{"DUCKDB_PATH", "database.path"},
		{"DUCKDB_CHECKPOINT_INTERVAL", "database.checkpoint_interval"},
		{"SEED_SAMPLE_DATA", "database.seed_sample_data"},
		{"SELECTION_LIMIT", "selection.limit"},
		{"SELECTION_CATALOG_TIMEOUT", "selection.catalog_timeout"},
		{"CACHE_DIR", "cache.dir"},
		{"BREAKER_FAILURE_RATIO", "breaker.failure_ratio"},
		{"IMPORT_BATCH_SIZE", "import.batch_size"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_UNMAPPED_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, _ := envValue(tt.name, "x")
			if path != tt.wantPath {
				t.Errorf("envValue(%q) path = %q, want %q", tt.name, path, tt.wantPath)
			}
		})
	}
}

func TestEnvValue_Lists(t *testing.T) {
	path, v := envValue("CORS_ORIGINS", " https://a.example ,, https://b.example ")
	if path != "security.cors_origins" {
		t.Fatalf("path = %q", path)
	}
	got, ok := v.([]string)
	if !ok || len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("value = %#v, want two trimmed origins", v)
	}

	if path, _ := envValue("CORS_ORIGINS", " , "); path != "" {
		t.Errorf("blank list should be dropped, got path %q", path)
	}
}

func TestEnvBindings_CoverEveryLeaf(t *testing.T) {
	// Every leaf field of Config must be reachable from the environment.
	var leaves int
	var count func(reflect.Type)
	count = func(rt reflect.Type) {
		for i := 0; i < rt.NumField(); i++ {
			if f := rt.Field(i); f.Type.Kind() == reflect.Struct {
				count(f.Type)
			} else {
				leaves++
			}
		}
	}
	count(reflect.TypeOf(Config{}))

	if len(envBindings) != leaves {
		t.Errorf("envBindings has %d entries, Config has %d leaf fields", len(envBindings), leaves)
	}
}

func TestUnknownEnv(t *testing.T) {
	got := UnknownEnv([]string{
		"SELECTION_LIMT=3",
		"SELECTION_LIMIT=3",
		"HOME=/root",
		"cache_tll=1m",
		"LOG_LEVEL=debug",
		"HTTP_PROXY=http://proxy",
	})
	want := []string{"CACHE_TLL", "HTTP_PROXY", "SELECTION_LIMT"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("UnknownEnv() = %v, want %v", got, want)
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SELECTION_LIMIT", "8")
	t.Setenv("SELECTION_CATALOG_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Selection.Limit != 8 {
		t.Errorf("Selection.Limit = %d, want 8", cfg.Selection.Limit)
	}
	if cfg.Selection.CatalogTimeout != 2*time.Second {
		t.Errorf("Selection.CatalogTimeout = %v, want 2s", cfg.Selection.CatalogTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("Security.CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Selection.DefaultRefrigerant != "R404A" {
		t.Errorf("Selection.DefaultRefrigerant = %q, want R404A (default)", cfg.Selection.DefaultRefrigerant)
	}
}

// Environment variables override file values.
func TestLoadConfigFile(t *testing.T) {
	configContent := `
server:
  port: 7070
database:
  path: ":memory:"
  seed_sample_data: true
selection:
  limit: 3
cache:
  ttl: 30s
logging:
  level: warn
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
	if !cfg.Database.SeedSampleData {
		t.Error("Database.SeedSampleData should be true from file")
	}
	if cfg.Selection.Limit != 3 {
		t.Errorf("Selection.Limit = %d, want 3", cfg.Selection.Limit)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v, want 30s", cfg.Cache.TTL)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env overrides file)", cfg.Logging.Level)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		wantErr string
	}{
		{"port out of range", "HTTP_PORT", "70000", "HTTP_PORT"},
		{"selection limit zero", "SELECTION_LIMIT", "0", "SELECTION_LIMIT"},
		{"bad log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"bad log format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"breaker ratio too high", "BREAKER_FAILURE_RATIO", "1.5", "BREAKER_FAILURE_RATIO"},
		{"import batch too large", "IMPORT_BATCH_SIZE", "20000", "IMPORT_BATCH_SIZE"},
		{"rate limit zero", "RATE_LIMIT_REQUESTS", "0", "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
			t.Setenv(tt.envKey, tt.envVal)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() expected error for %s=%s", tt.envKey, tt.envVal)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	tests := map[string]bool{
		"":            false,
		"development": false,
		"staging":     false,
		"production":  true,
		"PROD":        true,
	}
	for env, want := range tests {
		cfg := defaultConfig()
		cfg.Server.Environment = env
		if got := cfg.IsProduction(); got != want {
			t.Errorf("IsProduction(%q) = %v, want %v", env, got, want)
		}
	}
}

func TestValidate_Production(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Environment = "production"
	cfg.Security.RateLimitDisabled = true

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want production errors")
	}
	for _, want := range []string{"CORS_ORIGINS", "DISABLE_RATE_LIMIT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}

	cfg.Security.CORSOrigins = []string{"https://coolers.example"}
	cfg.Security.RateLimitDisabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := defaultConfig()
	cfg.Selection.Limit = 0
	cfg.Server.Port = 0
	cfg.Cache.TTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, want := range []string{"SELECTION_LIMIT", "HTTP_PORT", "CACHE_TTL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}

	// Disabled sections are not checked.
	cfg = defaultConfig()
	cfg.Cache.Enabled = false
	cfg.Cache.TTL = 0
	cfg.Breaker.Enabled = false
	cfg.Breaker.FailureRatio = 7
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with disabled sections = %v", err)
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS origins should contain a wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://coolers.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin list should not be reported as wildcard")
	}
}
