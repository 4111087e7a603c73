// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"database/sql"

	"github.com/tomtom215/coolerselect/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const coolerColumns = `id, model, series, heat_exchange_area, tube_volume, air_flow_rate,
	total_fan_power, total_fan_current, air_flow, defrost_power, defrost_water_flow_rate,
	pipe_dia, noise, weight, fin_spacing, fan_spacing_num, comment, created_at, updated_at`

const capacityColumns = `id, cooler_id, working_status, refrigerant, capacity, created_at`

const correctionColumns = `id, evaporating_temp, delta_t, quant, created_at, updated_at`

func scanCooler(s rowScanner) (models.Cooler, error) {
	var c models.Cooler
	var tubeVolume, airFlowRate, airFlow, defrostPower, defrostWater, noise, weight, fanSpacingNum sql.NullFloat64
	err := s.Scan(
		&c.ID, &c.Model, &c.Series, &c.HeatExchangeArea, &tubeVolume, &airFlowRate,
		&c.TotalFanPower, &c.TotalFanCurrent, &airFlow, &defrostPower, &defrostWater,
		&c.PipeDia, &noise, &weight, &c.FinSpacing, &fanSpacingNum, &c.Comment,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.TubeVolume = nullFloat(tubeVolume)
	c.AirFlowRate = nullFloat(airFlowRate)
	c.AirFlow = nullFloat(airFlow)
	c.DefrostPower = nullFloat(defrostPower)
	c.DefrostWaterFlowRate = nullFloat(defrostWater)
	c.Noise = nullFloat(noise)
	c.Weight = nullFloat(weight)
	c.FanSpacingNum = nullFloat(fanSpacingNum)
	return c, nil
}

func scanCapacity(s rowScanner) (models.CapacityRecord, error) {
	var r models.CapacityRecord
	err := s.Scan(&r.ID, &r.CoolerID, &r.WorkingStatus, &r.Refrigerant, &r.Capacity, &r.CreatedAt)
	return r, err
}

func scanCorrection(s rowScanner) (models.CorrectionEntry, error) {
	var e models.CorrectionEntry
	err := s.Scan(&e.ID, &e.EvaporatingTemp, &e.DeltaT, &e.Quant, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// nullFloat converts a nullable column into an optional value.
func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// floatArg converts an optional value into a driver argument (nil for NULL).
func floatArg(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
