// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package services adapts long-running components to suture.Service.

	HTTPServerService   *http.Server; ListenAndServe in a goroutine,
	                    Shutdown with a drain timeout on cancellation
	CheckpointService   periodic DuckDB CHECKPOINT on a ticker

Each wrapper implements fmt.Stringer so supervisor events name it. The cache
invalidation router (events.InvalidationService) already has a Serve method
and is added to the tree directly.
*/
package services
