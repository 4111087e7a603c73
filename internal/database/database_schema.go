// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the catalog tables.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the table creation SQL statements.
//
// Timestamps are plain TIMESTAMP values written by the application in UTC,
// so the schema needs no ICU extension. There are no UNIQUE constraints:
// natural keys are only unique among active rows, which the write paths
// enforce themselves.
func tableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS cooler_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS cooling_capacity_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS sc_quant_id_seq START 1`,

		`CREATE TABLE IF NOT EXISTS cooler (
			id BIGINT PRIMARY KEY DEFAULT nextval('cooler_id_seq'),
			model TEXT NOT NULL,
			series TEXT NOT NULL DEFAULT '',
			heat_exchange_area DOUBLE NOT NULL,
			tube_volume DOUBLE,
			air_flow_rate DOUBLE,
			total_fan_power TEXT NOT NULL DEFAULT '',
			total_fan_current TEXT NOT NULL DEFAULT '',
			air_flow DOUBLE,
			defrost_power DOUBLE,
			defrost_water_flow_rate DOUBLE,
			pipe_dia TEXT NOT NULL DEFAULT '',
			noise DOUBLE,
			weight DOUBLE,
			fin_spacing TEXT NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT '',
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS cooling_capacity (
			id BIGINT PRIMARY KEY DEFAULT nextval('cooling_capacity_id_seq'),
			cooler_id BIGINT NOT NULL,
			working_status TEXT NOT NULL,
			refrigerant TEXT NOT NULL,
			capacity DOUBLE NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sc_quant (
			id BIGINT PRIMARY KEY DEFAULT nextval('sc_quant_id_seq'),
			evaporating_temp DOUBLE NOT NULL,
			delta_t DOUBLE NOT NULL,
			quant DOUBLE NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
	}
}

// createIndexes creates indexes for the selection lookups and listings.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_cooler_model ON cooler(model)`,
		`CREATE INDEX IF NOT EXISTS idx_capacity_lookup ON cooling_capacity(working_status, refrigerant)`,
		`CREATE INDEX IF NOT EXISTS idx_capacity_cooler ON cooling_capacity(cooler_id)`,
		`CREATE INDEX IF NOT EXISTS idx_quant_pair ON sc_quant(evaporating_temp, delta_t)`,
	}
	for _, idx := range indexes {
		if _, err := db.conn.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", idx, err)
		}
	}
	return nil
}
