// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package config

import (
	"time"
)

// Config is the whole service configuration. It is built by Load from three
// layers (defaults, optional YAML file, environment) and is read-only
// afterwards.
//
// Each leaf field carries two tags: koanf names its path in YAML
// ("selection.limit") and env names the variable that overrides it
// ("SELECTION_LIMIT").
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	db, err := database.New(&cfg.Database)
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Selection SelectionConfig `koanf:"selection"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Import    ImportConfig    `koanf:"import"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig locates and tunes the DuckDB catalog.
type DatabaseConfig struct {
	Path      string `koanf:"path" env:"DUCKDB_PATH"` // ":memory:" for an in-process catalog
	MaxMemory string `koanf:"max_memory" env:"DUCKDB_MAX_MEMORY"`
	Threads   int    `koanf:"threads" env:"DUCKDB_THREADS"` // 0 uses NumCPU

	PreserveInsertionOrder bool `koanf:"preserve_insertion_order" env:"PRESERVE_INSERTION"`

	// SeedSampleData loads the demo catalog into an empty database.
	SeedSampleData bool `koanf:"seed_sample_data" env:"SEED_SAMPLE_DATA"`

	// CheckpointInterval is how often the WAL is folded into the database
	// file. Zero disables the periodic checkpoint; Close still checkpoints.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval" env:"DUCKDB_CHECKPOINT_INTERVAL"`
}

// SelectionConfig controls the selection engine. The defaults apply when a
// request omits refrigerant or supply method.
type SelectionConfig struct {
	Limit               int           `koanf:"limit" env:"SELECTION_LIMIT"`
	CatalogTimeout      time.Duration `koanf:"catalog_timeout" env:"SELECTION_CATALOG_TIMEOUT"`
	DefaultRefrigerant  string        `koanf:"default_refrigerant" env:"SELECTION_DEFAULT_REFRIGERANT"`
	DefaultSupplyMethod string        `koanf:"default_supply_method" env:"SELECTION_DEFAULT_SUPPLY_METHOD"`
}

// CacheConfig controls the two-tier selection result cache. An empty Dir
// keeps the Badger tier in memory.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled" env:"CACHE_ENABLED"`
	TTL        time.Duration `koanf:"ttl" env:"CACHE_TTL"`
	Dir        string        `koanf:"dir" env:"CACHE_DIR"`
	MaxEntries int           `koanf:"max_entries" env:"CACHE_MAX_ENTRIES"`
}

// BreakerConfig guards catalog reads with a gobreaker circuit breaker.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled" env:"BREAKER_ENABLED"`
	MaxRequests  uint32        `koanf:"max_requests" env:"BREAKER_MAX_REQUESTS"`   // half-open probes
	Interval     time.Duration `koanf:"interval" env:"BREAKER_INTERVAL"`           // closed-state counter reset
	Timeout      time.Duration `koanf:"timeout" env:"BREAKER_TIMEOUT"`             // open-state duration
	FailureRatio float64       `koanf:"failure_ratio" env:"BREAKER_FAILURE_RATIO"` // trip threshold
	MinRequests  uint32        `koanf:"min_requests" env:"BREAKER_MIN_REQUESTS"`   // before the ratio counts
}

// ImportConfig bounds CSV catalog imports.
type ImportConfig struct {
	MaxUploadBytes int64 `koanf:"max_upload_bytes" env:"IMPORT_MAX_UPLOAD_BYTES"`

	// BatchSize is the number of entities written per transaction.
	BatchSize int `koanf:"batch_size" env:"IMPORT_BATCH_SIZE"`
}

type ServerConfig struct {
	Port        int           `koanf:"port" env:"HTTP_PORT"`
	Host        string        `koanf:"host" env:"HTTP_HOST"`
	Timeout     time.Duration `koanf:"timeout" env:"HTTP_TIMEOUT"`
	Environment string        `koanf:"environment" env:"ENVIRONMENT"` // development, staging or production
}

type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size" env:"API_DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `koanf:"max_page_size" env:"API_MAX_PAGE_SIZE"`
}

// SecurityConfig holds rate limiting and CORS. CORS_ORIGINS is a
// comma-separated list.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" env:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" env:"RATE_LIMIT_WINDOW"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled" env:"DISABLE_RATE_LIMIT"`
	CORSOrigins       []string      `koanf:"cors_origins" env:"CORS_ORIGINS"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" env:"LOG_LEVEL"`   // trace, debug, info, warn, error
	Format string `koanf:"format" env:"LOG_FORMAT"` // json or console
	Caller bool   `koanf:"caller" env:"LOG_CALLER"`
}
