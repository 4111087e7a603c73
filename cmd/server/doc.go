// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package main is the entry point for the CoolerSelect server.

CoolerSelect picks refrigeration cooler units out of a DuckDB catalog for a
set of operating conditions (evaporating temperature, room temperature,
required cooling capacity, refrigerant, supply method), and exposes the
catalog itself over a REST API.

# Application Architecture

	RootSupervisor ("coolerselect")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService (file-backed catalogs only)
	├── MessagingSupervisor ("messaging-layer")
	│   └── InvalidationService (when the cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Selection requests flow through:

	chi router -> CachedSelector -> Engine -> BreakerCatalog -> DuckDB

Catalog mutations and imports publish catalog-changed events on an
in-process watermill bus; the invalidation service purges both cache tiers.

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog
 3. Database: DuckDB, schema migrations, optional sample seed
 4. Event bus and publisher
 5. Selection stack: breaker, engine, cache
 6. Importer, handlers, chi router
 7. Supervisor tree

# Configuration

	HTTP_PORT=8080
	LOG_LEVEL=info                   # trace, debug, info, warn, error
	LOG_FORMAT=json                  # json or console
	DUCKDB_PATH=/data/coolerselect.duckdb
	SEED_SAMPLE_DATA=false
	DUCKDB_CHECKPOINT_INTERVAL=5m
	SELECTION_LIMIT=5
	SELECTION_DEFAULT_REFRIGERANT=R404A
	CACHE_ENABLED=true
	CACHE_DIR=                       # empty keeps the Badger tier in memory
	BREAKER_ENABLED=true
	CORS_ORIGINS=https://app.example.com
	RATE_LIMIT_REQUESTS=100

A config.yaml (or CONFIG_PATH) may carry the same keys in nested form.

# Running

	go run ./cmd/server

	curl -s localhost:8080/api/v1/coolers/select \
	  -d '{"evaporating_temp":-10,"repo_temp":-2,"required_cooling_cap":150}'

Swagger UI is served at /swagger/index.html and Prometheus metrics at
/metrics.
*/
package main
