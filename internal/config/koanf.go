// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names an explicit YAML file. It wins over
// DefaultConfigPaths.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are tried in order; the first existing file is loaded.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/coolerselect/config.yaml",
	"/etc/coolerselect/config.yml",
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:                   "/data/coolerselect.duckdb",
			MaxMemory:              "512MB",
			PreserveInsertionOrder: true,
			CheckpointInterval:     5 * time.Minute,
		},
		Selection: SelectionConfig{
			Limit:               5,
			CatalogTimeout:      5 * time.Second,
			DefaultRefrigerant:  "R404A",
			DefaultSupplyMethod: "direct-expansion",
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 10000,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			FailureRatio: 0.6,
			MinRequests:  10,
		},
		Import: ImportConfig{
			MaxUploadBytes: 10 << 20,
			BatchSize:      500,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers defaults, the YAML file (if any) and the environment, in
// that order of increasing precedence, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	candidates := DefaultConfigPaths
	if explicit := os.Getenv(ConfigPathEnvVar); explicit != "" {
		candidates = []string{explicit}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envBinding is where one environment variable lands in the koanf tree.
type envBinding struct {
	path string
	list bool // comma-separated []string
}

// envBindings is derived once from the env tags on Config.
var envBindings = bindEnv(reflect.TypeOf(Config{}), "")

func bindEnv(t reflect.Type, prefix string) map[string]envBinding {
	out := make(map[string]envBinding)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := f.Tag.Get("koanf")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		if f.Type.Kind() == reflect.Struct {
			for name, b := range bindEnv(f.Type, key) {
				out[name] = b
			}
			continue
		}
		if name := f.Tag.Get("env"); name != "" {
			out[name] = envBinding{path: key, list: f.Type.Kind() == reflect.Slice}
		}
	}
	return out
}

// envValue is the koanf env callback: unknown variables are dropped and
// list fields are split on commas.
func envValue(name, value string) (string, interface{}) {
	b, ok := envBindings[strings.ToUpper(name)]
	if !ok {
		return "", nil
	}
	if !b.list {
		return b.path, value
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return "", nil
	}
	return b.path, items
}

// envPrefixes are the families of variables this service reads.
var envPrefixes = []string{"DUCKDB_", "SELECTION_", "CACHE_", "BREAKER_", "IMPORT_", "HTTP_", "API_", "RATE_LIMIT_", "LOG_", "CORS_"}

// UnknownEnv returns the variables in environ ("KEY=value") that look like
// service settings but match no field, typically typos such as
// SELECTION_LIMT. The result is sorted.
func UnknownEnv(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		name = strings.ToUpper(name)
		if _, ok := envBindings[name]; ok {
			continue
		}
		for _, p := range envPrefixes {
			if strings.HasPrefix(name, p) {
				unknown = append(unknown, name)
				break
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}
