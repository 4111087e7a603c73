// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package database provides the DuckDB-backed cooler catalog.

The catalog holds three tables:

  - cooler: physical datasheet of each unit
  - cooling_capacity: rated capacity per unit, working status and refrigerant
  - sc_quant: measured correction coefficients keyed by evaporating
    temperature and temperature difference

Every table is soft-deleted through is_deleted and deleted_at. All reads,
including the selection lookups, filter deleted rows here so callers only
ever see active records.

# Selection Catalog

DB satisfies selection.Catalog:

	engine, err := selection.NewEngine(cfg, db, logger)

FindCorrectionEntry matches evaporating temperature and delta T with exact
equality. GetCapacityRecords and GetUnitsByIDs return active rows only.

# Writes

Cooler, capacity and correction CRUD is used by the HTTP API. Bulk imports
run one transaction per batch through ImportCoolers and UpsertCorrections.
Missing or deleted rows are reported as ErrNotFound.

# Thread Safety

DB is safe for concurrent use. database/sql pools connections and DuckDB
serializes conflicting writes.
*/
package database
