// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SelectionsTotal = counterVec("selections_total",
		"Selection requests by outcome (ok, client_error, infrastructure_error, canceled)", "outcome")

	SelectionDuration = histogram("selection_duration_seconds",
		"End-to-end selection latency",
		[]float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5})

	// source is "measured" or "fallback".
	SelectionQuantSource = counterVec("selection_quant_source_total",
		"Where the correction coefficient of a successful selection came from", "source", "bucket")

	SelectionResultSize = histogram("selection_result_size",
		"Units returned per selection", []float64{0, 1, 2, 3, 4, 5, 10})

	CatalogQueryDuration = histogramVec("catalog_query_duration_seconds",
		"Catalog lookup latency", prometheus.DefBuckets, "operation")
	CatalogQueryErrors = counterVec("catalog_query_errors_total",
		"Failed catalog lookups", "operation")

	CacheHits   = counterVec("selection_cache_hits_total", "Selection cache hits by tier (memory, badger)", "tier")
	CacheMisses = counter("selection_cache_misses_total", "Selection cache misses")
	CachePurges = counter("selection_cache_purges_total", "Cache purges after catalog changes")

	CatalogEventsPublished = counterVec("catalog_events_published_total",
		"Catalog change events published", "entity")

	// kind is "coolers" or "corrections"; result is inserted, updated or skipped.
	ImportRowsTotal = counterVec("import_rows_total", "Imported CSV rows", "kind", "result")
	ImportDuration  = histogramVec("import_duration_seconds", "CSV import latency", prometheus.DefBuckets, "kind")
)

func RecordCatalogQuery(operation string, duration time.Duration, err error) {
	CatalogQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		CatalogQueryErrors.WithLabelValues(operation).Inc()
	}
}

func RecordSelection(outcome string, duration time.Duration) {
	SelectionsTotal.WithLabelValues(outcome).Inc()
	SelectionDuration.Observe(duration.Seconds())
}

// RecordSelectionResult is called only for selections that returned units.
func RecordSelectionResult(quantSource, bucket string, returned int) {
	SelectionQuantSource.WithLabelValues(quantSource, bucket).Inc()
	SelectionResultSize.Observe(float64(returned))
}

// RecordCacheLookup counts a hit on tier, or a miss when tier is "".
func RecordCacheLookup(tier string) {
	if tier == "" {
		CacheMisses.Inc()
		return
	}
	CacheHits.WithLabelValues(tier).Inc()
}

func RecordImport(kind string, inserted, updated, skipped int, duration time.Duration) {
	for result, n := range map[string]int{"inserted": inserted, "updated": updated, "skipped": skipped} {
		ImportRowsTotal.WithLabelValues(kind, result).Add(float64(n))
	}
	ImportDuration.WithLabelValues(kind).Observe(duration.Seconds())
}
