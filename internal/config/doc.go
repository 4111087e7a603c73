// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package config provides centralized configuration management for CoolerSelect.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Variable names come from the env
tags on the config structs; UnknownEnv reports lookalikes that match no
field.

# Configuration Structure

  - DatabaseConfig: DuckDB catalog location and tuning
  - SelectionConfig: result limit, catalog timeout, request defaults
  - CacheConfig: selection result cache (memory + Badger)
  - BreakerConfig: circuit breaker around catalog reads
  - ImportConfig: CSV catalog import limits
  - ServerConfig / APIConfig / SecurityConfig: HTTP surface
  - LoggingConfig: zerolog level and format

# Example config.yaml

	server:
	  port: 8080
	database:
	  path: /data/coolerselect.duckdb
	  seed_sample_data: true
	selection:
	  limit: 5
	  catalog_timeout: 5s
	cache:
	  ttl: 10m
	  dir: /data/cache
*/
package config
