// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

// Package query builds parameterized WHERE clauses for the catalog
// listings:
//
//	w := query.Active().
//	    Between("evaporating_temp", filter.MinEvaporatingTemp, filter.MaxEvaporatingTemp).
//	    Between("delta_t", filter.MinDeltaT, filter.MaxDeltaT)
//	where, args := w.SQL()
//	// WHERE is_deleted = FALSE AND evaporating_temp >= ? AND delta_t <= ?
//
// Values are always bound through ? placeholders; column names are literals
// chosen by the caller. A Where is not safe for concurrent use.
package query
