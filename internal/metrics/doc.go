// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package metrics provides Prometheus metrics for CoolerSelect.

Collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Selection:
  - selections_total{outcome}: ok, client_error, infrastructure_error or canceled
  - selection_duration_seconds: end-to-end latency
  - selection_quant_source_total{source,bucket}: measured vs fallback coefficients
  - selection_result_size: units returned per selection

Catalog and resilience:
  - catalog_query_duration_seconds{operation} and catalog_query_errors_total{operation}
  - circuit_breaker_state{name}: 0 closed, 1 half-open, 2 open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from,to}

Cache and events:
  - selection_cache_hits_total{tier}, selection_cache_misses_total
  - selection_cache_purges_total
  - catalog_events_published_total{entity}

Import:
  - import_rows_total{kind,result}
  - import_duration_seconds{kind}

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Catalog connection pool (RegisterDBStats):
  - go_sql_open_connections{db_name="catalog"}, go_sql_wait_count_total and
    the other database/sql pool statistics

# Example Alert

	- alert: CatalogBreakerOpen
	  expr: circuit_breaker_state{name="catalog"} == 2
	  for: 1m
*/
package metrics
