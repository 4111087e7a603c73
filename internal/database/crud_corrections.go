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

// GetCorrection returns one active correction entry.
func (db *DB) GetCorrection(ctx context.Context, id int64) (*models.CorrectionEntry, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+correctionColumns+` FROM sc_quant WHERE id = ? AND is_deleted = FALSE`, id)
	e, err := scanCorrection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get correction entry %d: %w", id, err)
	}
	return &e, nil
}

// ListCorrections returns one page of active correction entries ordered by
// evaporating temperature, then delta T.
func (db *DB) ListCorrections(ctx context.Context, filter models.CorrectionFilter, page models.Pagination) (*models.Page[models.CorrectionEntry], error) {
	w := query.Active().
		Between("evaporating_temp", filter.MinEvaporatingTemp, filter.MaxEvaporatingTemp).
		Between("delta_t", filter.MinDeltaT, filter.MaxDeltaT)
	whereClause, args := w.SQL()

	var total int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM sc_quant `+whereClause, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count correction entries: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+correctionColumns+` FROM sc_quant `+whereClause+`
		ORDER BY evaporating_temp, delta_t, id LIMIT ? OFFSET ?`, w.Paged(page.Size, page.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction entries: %w", err)
	}
	defer closeWithLog(rows, "correction rows")

	items := []models.CorrectionEntry{}
	for rows.Next() {
		e, err := scanCorrection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan correction entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate correction entries: %w", err)
	}

	return &models.Page[models.CorrectionEntry]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages(total),
	}, nil
}

// CreateCorrection inserts a correction entry. An active entry for the same
// (evaporating temperature, delta T) pair returns ErrConflict.
func (db *DB) CreateCorrection(ctx context.Context, e *models.CorrectionEntry) (*models.CorrectionEntry, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if _, err := activeCorrectionID(ctx, tx, e.EvaporatingTemp, e.DeltaT); err == nil {
		return nil, fmt.Errorf("correction (%g, %g): %w", e.EvaporatingTemp, e.DeltaT, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	id, err := db.insertCorrection(ctx, tx, e)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit correction insert: %w", err)
	}
	return db.GetCorrection(ctx, id)
}

// UpdateCorrectionQuant changes the coefficient of an active correction entry.
func (db *DB) UpdateCorrectionQuant(ctx context.Context, id int64, quant float64) (*models.CorrectionEntry, error) {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE sc_quant SET quant = ?, updated_at = ? WHERE id = ? AND is_deleted = FALSE`,
		quant, db.now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update correction entry %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return db.GetCorrection(ctx, id)
}

// DeleteCorrection soft-deletes one correction entry.
func (db *DB) DeleteCorrection(ctx context.Context, id int64) error {
	now := db.now()
	res, err := db.conn.ExecContext(ctx,
		`UPDATE sc_quant SET is_deleted = TRUE, deleted_at = ?, updated_at = ? WHERE id = ? AND is_deleted = FALSE`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete correction entry %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) insertCorrection(ctx context.Context, ex execer, e *models.CorrectionEntry) (int64, error) {
	now := db.now()
	var id int64
	err := ex.QueryRowContext(ctx,
		`INSERT INTO sc_quant (evaporating_temp, delta_t, quant, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		e.EvaporatingTemp, e.DeltaT, e.Quant, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert correction (%g, %g): %w", e.EvaporatingTemp, e.DeltaT, err)
	}
	return id, nil
}

func activeCorrectionID(ctx context.Context, ex execer, evaporatingTemp, deltaT float64) (int64, error) {
	var id int64
	err := ex.QueryRowContext(ctx,
		`SELECT id FROM sc_quant WHERE evaporating_temp = ? AND delta_t = ? AND is_deleted = FALSE ORDER BY id LIMIT 1`,
		evaporatingTemp, deltaT).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up correction (%g, %g): %w", evaporatingTemp, deltaT, err)
	}
	return id, nil
}
