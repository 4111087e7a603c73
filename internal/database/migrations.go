// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/coolerselect/internal/logging"
)

// migration is one schema step applied after the base tables exist. Steps
// are append-only and identified by version; each runs in its own
// transaction together with its schema_migrations row.
type migration struct {
	version    int
	name       string
	statements []string
}

// catalogMigrations lists every schema step in version order.
var catalogMigrations = []migration{
	{
		version: 1,
		name:    "cooler_fan_spacing_num",
		statements: []string{
			`ALTER TABLE cooler ADD COLUMN IF NOT EXISTS fan_spacing_num DOUBLE`,
		},
	},
	{
		// Rows written before the importer parsed fin spacing labels
		// ("C04=4.5mm") get the numeric value derived in SQL.
		version: 2,
		name:    "cooler_fan_spacing_backfill",
		statements: []string{
			`UPDATE cooler
			 SET fan_spacing_num = TRY_CAST(regexp_extract(fin_spacing, '=(\d+\.?\d*)', 1) AS DOUBLE)
			 WHERE fan_spacing_num IS NULL AND fin_spacing <> ''`,
		},
	},
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TIMESTAMP NOT NULL
)`

// migrate applies the catalog migrations that schema_migrations does not
// record yet.
func (db *DB) migrate() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	applied := 0
	for _, m := range catalogMigrations {
		if m.version <= current {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return err
		}
		applied++
	}

	if applied > 0 {
		logging.Info().
			Int("applied", applied).
			Int("schema_version", catalogMigrations[len(catalogMigrations)-1].version).
			Msg("Catalog schema migrated")
	}
	return nil
}

func (db *DB) applyMigration(ctx context.Context, m migration) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration %d (%s): begin: %w", m.version, m.name, err)
	}
	defer rollbackQuietly(tx)

	for _, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
		m.version, m.name, db.now()); err != nil {
		return fmt.Errorf("migration %d (%s): record: %w", m.version, m.name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration %d (%s): commit: %w", m.version, m.name, err)
	}
	return nil
}

// SchemaVersion returns the highest applied migration, 0 for a fresh file.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}
