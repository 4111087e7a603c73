// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/coolerselect/internal/models"
)

// BatchResult counts the rows written by one import batch.
type BatchResult struct {
	Inserted   int
	Updated    int
	Capacities int
}

// ImportCoolers writes a batch of data sheet units in one transaction.
//
// Units are matched to active coolers by model. A matched cooler has its
// datasheet overwritten and its capacity records replaced; an unmatched
// one is inserted. Either the whole batch is written or none of it.
func (db *DB) ImportCoolers(ctx context.Context, batch []models.CoolerImport) (BatchResult, error) {
	var result BatchResult
	if len(batch) == 0 {
		return result, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	for i := range batch {
		item := &batch[i]

		id, err := activeCoolerIDByModel(ctx, tx, item.Cooler.Model)
		switch {
		case err == nil:
			if err := db.replaceCooler(ctx, tx, id, &item.Cooler); err != nil {
				return BatchResult{}, err
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE cooling_capacity SET is_deleted = TRUE, deleted_at = ? WHERE cooler_id = ? AND is_deleted = FALSE`,
				db.now(), id); err != nil {
				return BatchResult{}, fmt.Errorf("failed to retire capacity records of cooler %d: %w", id, err)
			}
			result.Updated++
		case errors.Is(err, ErrNotFound):
			id, err = db.insertCooler(ctx, tx, &item.Cooler)
			if err != nil {
				return BatchResult{}, err
			}
			result.Inserted++
		default:
			return BatchResult{}, err
		}

		for _, c := range item.Capacities {
			if _, err := db.insertCapacity(ctx, tx, id, c.WorkingStatus, c.Refrigerant, c.Capacity); err != nil {
				return BatchResult{}, err
			}
			result.Capacities++
		}
	}

	if err := tx.Commit(); err != nil {
		return BatchResult{}, fmt.Errorf("failed to commit cooler import: %w", err)
	}
	return result, nil
}

// UpsertCorrections writes a batch of correction entries in one transaction.
// An entry whose (evaporating temperature, delta T) pair is already active
// has its coefficient replaced.
func (db *DB) UpsertCorrections(ctx context.Context, batch []models.CorrectionEntry) (BatchResult, error) {
	var result BatchResult
	if len(batch) == 0 {
		return result, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	for i := range batch {
		e := &batch[i]

		id, err := activeCorrectionID(ctx, tx, e.EvaporatingTemp, e.DeltaT)
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx,
				`UPDATE sc_quant SET quant = ?, updated_at = ? WHERE id = ?`,
				e.Quant, db.now(), id); err != nil {
				return BatchResult{}, fmt.Errorf("failed to update correction %d: %w", id, err)
			}
			result.Updated++
		case errors.Is(err, ErrNotFound):
			if _, err := db.insertCorrection(ctx, tx, e); err != nil {
				return BatchResult{}, err
			}
			result.Inserted++
		default:
			return BatchResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return BatchResult{}, fmt.Errorf("failed to commit correction import: %w", err)
	}
	return result, nil
}

// CountActiveCoolers returns the number of active coolers.
func (db *DB) CountActiveCoolers(ctx context.Context) (int64, error) {
	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM cooler WHERE is_deleted = FALSE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count coolers: %w", err)
	}
	return n, nil
}
