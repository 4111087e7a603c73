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
	"strings"

	"github.com/tomtom215/coolerselect/internal/database/query"
	"github.com/tomtom215/coolerselect/internal/models"
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// GetCooler returns one active cooler.
func (db *DB) GetCooler(ctx context.Context, id int64) (*models.Cooler, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+coolerColumns+` FROM cooler WHERE id = ? AND is_deleted = FALSE`, id)
	c, err := scanCooler(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cooler %d: %w", id, err)
	}
	return &c, nil
}

// ListCoolers returns one page of active coolers ordered by model.
func (db *DB) ListCoolers(ctx context.Context, filter models.CoolerFilter, page models.Pagination) (*models.Page[models.Cooler], error) {
	w := query.Active().
		Contains("model", filter.Model).
		Eq("series", filter.Series).
		Between("heat_exchange_area", filter.MinHeatExchangeArea, filter.MaxHeatExchangeArea)
	whereClause, args := w.SQL()

	var total int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM cooler `+whereClause, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count coolers: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+coolerColumns+` FROM cooler `+whereClause+` ORDER BY model, id LIMIT ? OFFSET ?`,
		w.Paged(page.Size, page.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("failed to list coolers: %w", err)
	}
	defer closeWithLog(rows, "cooler rows")

	items := []models.Cooler{}
	for rows.Next() {
		c, err := scanCooler(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cooler: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coolers: %w", err)
	}

	return &models.Page[models.Cooler]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages(total),
	}, nil
}

// CreateCooler inserts a cooler and returns it with its id and timestamps.
// An active cooler with the same model returns ErrConflict.
func (db *DB) CreateCooler(ctx context.Context, c *models.Cooler) (*models.Cooler, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if _, err := activeCoolerIDByModel(ctx, tx, c.Model); err == nil {
		return nil, fmt.Errorf("cooler model %q: %w", c.Model, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	id, err := db.insertCooler(ctx, tx, c)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cooler insert: %w", err)
	}
	return db.GetCooler(ctx, id)
}

// UpdateCooler applies a partial update to an active cooler.
func (db *DB) UpdateCooler(ctx context.Context, id int64, u *models.CoolerUpdate) (*models.Cooler, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if u.Model != nil {
		add("model", *u.Model)
	}
	if u.Series != nil {
		add("series", *u.Series)
	}
	if u.HeatExchangeArea != nil {
		add("heat_exchange_area", *u.HeatExchangeArea)
	}
	if u.TubeVolume != nil {
		add("tube_volume", *u.TubeVolume)
	}
	if u.AirFlowRate != nil {
		add("air_flow_rate", *u.AirFlowRate)
	}
	if u.TotalFanPower != nil {
		add("total_fan_power", *u.TotalFanPower)
	}
	if u.TotalFanCurrent != nil {
		add("total_fan_current", *u.TotalFanCurrent)
	}
	if u.AirFlow != nil {
		add("air_flow", *u.AirFlow)
	}
	if u.DefrostPower != nil {
		add("defrost_power", *u.DefrostPower)
	}
	if u.DefrostWaterFlowRate != nil {
		add("defrost_water_flow_rate", *u.DefrostWaterFlowRate)
	}
	if u.PipeDia != nil {
		add("pipe_dia", *u.PipeDia)
	}
	if u.Noise != nil {
		add("noise", *u.Noise)
	}
	if u.Weight != nil {
		add("weight", *u.Weight)
	}
	if u.FinSpacing != nil {
		add("fin_spacing", *u.FinSpacing)
	}
	if u.FanSpacingNum != nil {
		add("fan_spacing_num", *u.FanSpacingNum)
	}
	if u.Comment != nil {
		add("comment", *u.Comment)
	}

	if len(sets) == 0 {
		return db.GetCooler(ctx, id)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if u.Model != nil {
		other, err := activeCoolerIDByModel(ctx, tx, *u.Model)
		if err == nil && other != id {
			return nil, fmt.Errorf("cooler model %q: %w", *u.Model, ErrConflict)
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	add("updated_at", db.now())
	args = append(args, id)
	res, err := tx.ExecContext(ctx,
		`UPDATE cooler SET `+strings.Join(sets, ", ")+` WHERE id = ? AND is_deleted = FALSE`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update cooler %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cooler update: %w", err)
	}
	return db.GetCooler(ctx, id)
}

// DeleteCooler soft-deletes a cooler together with its capacity records.
func (db *DB) DeleteCooler(ctx context.Context, id int64) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	now := db.now()
	res, err := tx.ExecContext(ctx,
		`UPDATE cooler SET is_deleted = TRUE, deleted_at = ?, updated_at = ? WHERE id = ? AND is_deleted = FALSE`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete cooler %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE cooling_capacity SET is_deleted = TRUE, deleted_at = ? WHERE cooler_id = ? AND is_deleted = FALSE`,
		now, id); err != nil {
		return fmt.Errorf("failed to delete capacity records of cooler %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cooler delete: %w", err)
	}
	return nil
}

// insertCooler inserts c within ex and returns the new id.
func (db *DB) insertCooler(ctx context.Context, ex execer, c *models.Cooler) (int64, error) {
	now := db.now()
	var id int64
	err := ex.QueryRowContext(ctx,
		`INSERT INTO cooler (model, series, heat_exchange_area, tube_volume, air_flow_rate,
			total_fan_power, total_fan_current, air_flow, defrost_power, defrost_water_flow_rate,
			pipe_dia, noise, weight, fin_spacing, fan_spacing_num, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		c.Model, c.Series, c.HeatExchangeArea, floatArg(c.TubeVolume), floatArg(c.AirFlowRate),
		c.TotalFanPower, c.TotalFanCurrent, floatArg(c.AirFlow), floatArg(c.DefrostPower), floatArg(c.DefrostWaterFlowRate),
		c.PipeDia, floatArg(c.Noise), floatArg(c.Weight), c.FinSpacing, floatArg(c.FanSpacingNum), c.Comment,
		now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cooler %q: %w", c.Model, err)
	}
	return id, nil
}

// replaceCooler overwrites every datasheet column of an active cooler.
func (db *DB) replaceCooler(ctx context.Context, ex execer, id int64, c *models.Cooler) error {
	_, err := ex.ExecContext(ctx,
		`UPDATE cooler SET series = ?, heat_exchange_area = ?, tube_volume = ?, air_flow_rate = ?,
			total_fan_power = ?, total_fan_current = ?, air_flow = ?, defrost_power = ?,
			defrost_water_flow_rate = ?, pipe_dia = ?, noise = ?, weight = ?, fin_spacing = ?,
			fan_spacing_num = ?, comment = ?, updated_at = ?
		WHERE id = ?`,
		c.Series, c.HeatExchangeArea, floatArg(c.TubeVolume), floatArg(c.AirFlowRate),
		c.TotalFanPower, c.TotalFanCurrent, floatArg(c.AirFlow), floatArg(c.DefrostPower),
		floatArg(c.DefrostWaterFlowRate), c.PipeDia, floatArg(c.Noise), floatArg(c.Weight), c.FinSpacing,
		floatArg(c.FanSpacingNum), c.Comment, db.now(), id)
	if err != nil {
		return fmt.Errorf("failed to replace cooler %d: %w", id, err)
	}
	return nil
}

// activeCoolerIDByModel returns the id of the active cooler with model.
func activeCoolerIDByModel(ctx context.Context, ex execer, model string) (int64, error) {
	var id int64
	err := ex.QueryRowContext(ctx,
		`SELECT id FROM cooler WHERE model = ? AND is_deleted = FALSE ORDER BY id LIMIT 1`, model).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up cooler model %q: %w", model, err)
	}
	return id, nil
}
