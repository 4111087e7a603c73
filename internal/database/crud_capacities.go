// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/coolerselect/internal/models"
)

// ListCapacities returns the active capacity records of an active cooler,
// ordered by working status and refrigerant.
func (db *DB) ListCapacities(ctx context.Context, coolerID int64) ([]models.CapacityRecord, error) {
	if _, err := db.GetCooler(ctx, coolerID); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+capacityColumns+` FROM cooling_capacity
		WHERE cooler_id = ? AND is_deleted = FALSE
		ORDER BY working_status, refrigerant, id`, coolerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list capacities of cooler %d: %w", coolerID, err)
	}
	defer closeWithLog(rows, "capacity rows")

	records := []models.CapacityRecord{}
	for rows.Next() {
		r, err := scanCapacity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan capacity record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CreateCapacity adds a capacity record to an active cooler. A second active
// record for the same working status and refrigerant returns ErrConflict.
func (db *DB) CreateCapacity(ctx context.Context, r *models.CapacityRecord) (*models.CapacityRecord, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT TRUE FROM cooler WHERE id = ? AND is_deleted = FALSE`, r.CoolerID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up cooler %d: %w", r.CoolerID, err)
	}

	var existing int64
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cooling_capacity
		WHERE cooler_id = ? AND working_status = ? AND refrigerant = ? AND is_deleted = FALSE`,
		r.CoolerID, r.WorkingStatus, r.Refrigerant).Scan(&existing)
	if err != nil {
		return nil, fmt.Errorf("failed to check capacity record: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("capacity %s/%s for cooler %d: %w", r.WorkingStatus, r.Refrigerant, r.CoolerID, ErrConflict)
	}

	id, err := db.insertCapacity(ctx, tx, r.CoolerID, r.WorkingStatus, r.Refrigerant, r.Capacity)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit capacity insert: %w", err)
	}

	row := db.conn.QueryRowContext(ctx, `SELECT `+capacityColumns+` FROM cooling_capacity WHERE id = ?`, id)
	created, err := scanCapacity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to read capacity record %d: %w", id, err)
	}
	return &created, nil
}

// DeleteCapacity soft-deletes one capacity record.
func (db *DB) DeleteCapacity(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE cooling_capacity SET is_deleted = TRUE, deleted_at = ? WHERE id = ? AND is_deleted = FALSE`,
		db.now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete capacity record %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) insertCapacity(ctx context.Context, ex execer, coolerID int64, workingStatus, refrigerant string, capacity float64) (int64, error) {
	var id int64
	err := ex.QueryRowContext(ctx,
		`INSERT INTO cooling_capacity (cooler_id, working_status, refrigerant, capacity, created_at)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		coolerID, workingStatus, refrigerant, capacity, db.now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert capacity record for cooler %d: %w", coolerID, err)
	}
	return id, nil
}
