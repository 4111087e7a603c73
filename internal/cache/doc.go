// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package cache caches selection results.

A selection is a pure function of the request and the catalog contents, so
results are cached until the catalog changes. Two tiers are used:

  - Memory: a bounded in-memory TTL map, checked first
  - Store: a BadgerDB store, checked second; it survives restarts when a
    directory is configured and runs in memory otherwise

SelectionCache combines the tiers and CachedSelector puts them in front of
the selection engine:

	sc, err := cache.NewSelectionCache(&cfg.Cache, logger)
	if err != nil {
	    return err
	}
	defer sc.Close()

	selector := cache.NewCachedSelector(engine, sc)
	result, err := selector.Select(ctx, req)

# Keys

Keys are the hex SHA-256 of the normalized request: refrigerant and supply
method after alias resolution and defaulting, plus the configured result
limit. "r404a" and "R404A" therefore share an entry.

# Invalidation

Entries carry a TTL in both tiers. Catalog mutations publish a change event
and the events package calls SelectionCache.Purge, which empties both tiers.

# Metrics

Lookups increment selection_cache_hits_total{tier} or
selection_cache_misses_total. Purges increment selection_cache_purges_total.
*/
package cache
