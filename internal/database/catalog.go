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

	"github.com/tomtom215/coolerselect/internal/database/query"
	"github.com/tomtom215/coolerselect/internal/models"
)

// FindCorrectionEntry returns the active correction entry whose evaporating
// temperature and delta T equal the arguments exactly, or nil, nil.
func (db *DB) FindCorrectionEntry(ctx context.Context, evaporatingTemp, deltaT float64) (*models.CorrectionEntry, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+correctionColumns+` FROM sc_quant
		WHERE is_deleted = FALSE AND evaporating_temp = ? AND delta_t = ?
		ORDER BY id
		LIMIT 1`,
		evaporatingTemp, deltaT)

	entry, err := scanCorrection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find correction entry: %w", err)
	}
	return &entry, nil
}

// GetCapacityRecords returns the active capacity records of active coolers
// for a working status and refrigerant, ordered by id.
func (db *DB) GetCapacityRecords(ctx context.Context, workingStatus, refrigerant string) ([]models.CapacityRecord, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT cc.id, cc.cooler_id, cc.working_status, cc.refrigerant, cc.capacity, cc.created_at
		FROM cooling_capacity cc
		JOIN cooler c ON c.id = cc.cooler_id AND c.is_deleted = FALSE
		WHERE cc.is_deleted = FALSE AND cc.working_status = ? AND cc.refrigerant = ?
		ORDER BY cc.id`,
		workingStatus, refrigerant)
	if err != nil {
		return nil, fmt.Errorf("failed to query capacity records: %w", err)
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

// GetUnitsByIDs returns the active coolers among ids, in id order.
func (db *DB) GetUnitsByIDs(ctx context.Context, ids []int64) ([]models.Cooler, error) {
	if len(ids) == 0 {
		return []models.Cooler{}, nil
	}

	whereClause, args := query.Active().In("id", ids).SQL()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+coolerColumns+` FROM cooler `+whereClause+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query coolers by id: %w", err)
	}
	defer closeWithLog(rows, "cooler rows")

	units := make([]models.Cooler, 0, len(ids))
	for rows.Next() {
		c, err := scanCooler(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cooler: %w", err)
		}
		units = append(units, c)
	}
	return units, rows.Err()
}
