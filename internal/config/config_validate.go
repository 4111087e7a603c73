// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	maxSelectionLimit  = 100
	maxImportBatchSize = 10000
	minUploadBytes     = 1 << 10

	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// rule is one constraint; msg names the environment variable so the
// operator knows what to fix.
type rule struct {
	broken bool
	msg    string
}

func (c *Config) rules() []rule {
	db, sel, cache, br := c.Database, c.Selection, c.Cache, c.Breaker
	sec := c.Security

	rules := []rule{
		{db.Path == "", "DUCKDB_PATH is required (use :memory: for an in-process database)"},
		{db.Threads < 0, "DUCKDB_THREADS must be zero or positive"},
		{db.CheckpointInterval < 0, "DUCKDB_CHECKPOINT_INTERVAL must be zero or positive"},

		{sel.Limit < 1 || sel.Limit > maxSelectionLimit, fmt.Sprintf("SELECTION_LIMIT must be between 1 and %d", maxSelectionLimit)},
		{sel.CatalogTimeout <= 0, "SELECTION_CATALOG_TIMEOUT must be positive"},
		{strings.TrimSpace(sel.DefaultRefrigerant) == "", "SELECTION_DEFAULT_REFRIGERANT must not be empty"},
		{strings.TrimSpace(sel.DefaultSupplyMethod) == "", "SELECTION_DEFAULT_SUPPLY_METHOD must not be empty"},

		{c.Import.BatchSize < 1 || c.Import.BatchSize > maxImportBatchSize, fmt.Sprintf("IMPORT_BATCH_SIZE must be between 1 and %d", maxImportBatchSize)},
		{c.Import.MaxUploadBytes < minUploadBytes, fmt.Sprintf("IMPORT_MAX_UPLOAD_BYTES must be at least %d", minUploadBytes)},

		{c.Server.Port < 1 || c.Server.Port > 65535, "HTTP_PORT must be between 1 and 65535"},
		{c.Server.Timeout <= 0, "HTTP_TIMEOUT must be positive"},

		{c.API.DefaultPageSize < 1, "API_DEFAULT_PAGE_SIZE must be positive"},
		{c.API.MaxPageSize < c.API.DefaultPageSize, "API_MAX_PAGE_SIZE must be >= API_DEFAULT_PAGE_SIZE"},

		{!slices.Contains(logLevels, c.Logging.Level), "LOG_LEVEL must be one of: " + strings.Join(logLevels, ", ")},
		{c.Logging.Format != "" && !slices.Contains(logFormats, c.Logging.Format), "LOG_FORMAT must be one of: " + strings.Join(logFormats, ", ")},
	}

	if cache.Enabled {
		rules = append(rules,
			rule{cache.TTL < time.Second, "CACHE_TTL must be at least 1s"},
			rule{cache.MaxEntries < 1, "CACHE_MAX_ENTRIES must be positive"},
		)
	}
	if br.Enabled {
		rules = append(rules,
			rule{br.FailureRatio <= 0 || br.FailureRatio > 1, "BREAKER_FAILURE_RATIO must be in (0, 1]"},
			rule{br.Timeout <= 0, "BREAKER_TIMEOUT must be positive"},
			rule{br.MaxRequests == 0, "BREAKER_MAX_REQUESTS must be positive"},
		)
	}
	if !sec.RateLimitDisabled {
		rules = append(rules,
			rule{sec.RateLimitReqs < 1 || sec.RateLimitReqs > maxRateLimitRequests,
				fmt.Sprintf("RATE_LIMIT_REQUESTS must be between 1 and %d", maxRateLimitRequests)},
			rule{sec.RateLimitWindow < minRateLimitWindow || sec.RateLimitWindow > maxRateLimitWindow,
				fmt.Sprintf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)},
		)
	}
	if c.IsProduction() {
		rules = append(rules,
			rule{c.HasWildcardCORS(), "CORS_ORIGINS must list explicit origins in production"},
			rule{sec.RateLimitDisabled, "DISABLE_RATE_LIMIT is not allowed in production"},
		)
	}
	return rules
}

// Validate reports every broken constraint at once.
func (c *Config) Validate() error {
	var errs []error
	for _, r := range c.rules() {
		if r.broken {
			errs = append(errs, errors.New(r.msg))
		}
	}
	return errors.Join(errs...)
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}

// IsProduction reports ENVIRONMENT=production (or prod), case-insensitively.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}
