// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

// Package models defines the catalog data structures shared by the store,
// the selection engine, the importer and the HTTP API.
package models

import (
	"time"
)

// Cooler is the full physical datasheet of a cooler unit as stored in
// the catalog. Optional measurements are pointers so that "not measured"
// stays distinct from zero.
//
// Units follow the manufacturer data sheets:
//   - HeatExchangeArea: m²
//   - TubeVolume: dm³
//   - AirFlowRate: m³/h
//   - AirFlow: air throw in m
//   - DefrostPower: kW
//   - DefrostWaterFlowRate: m³/h
//   - Noise: dB(A) at 5 m
//   - Weight: kg
//
// TotalFanPower, TotalFanCurrent, PipeDia and FinSpacing are free-form
// strings on the data sheets ("3×0.55", "Φ22/Φ42", "φ=6").
type Cooler struct {
	ID                   int64     `json:"id"`
	Model                string    `json:"model"`
	Series               string    `json:"series,omitempty"`
	HeatExchangeArea     float64   `json:"heat_exchange_area"`
	TubeVolume           *float64  `json:"tube_volume,omitempty"`
	AirFlowRate          *float64  `json:"air_flow_rate,omitempty"`
	TotalFanPower        string    `json:"total_fan_power,omitempty"`
	TotalFanCurrent      string    `json:"total_fan_current,omitempty"`
	AirFlow              *float64  `json:"air_flow,omitempty"`
	DefrostPower         *float64  `json:"defrost_power,omitempty"`
	DefrostWaterFlowRate *float64  `json:"defrost_water_flow_rate,omitempty"`
	PipeDia              string    `json:"pipe_dia,omitempty"`
	Noise                *float64  `json:"noise,omitempty"`
	Weight               *float64  `json:"weight,omitempty"`
	FinSpacing           string    `json:"fin_spacing,omitempty"`
	FanSpacingNum        *float64  `json:"fan_spacing_num,omitempty"`
	Comment              string    `json:"comment,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CoolerUpdate carries a partial update; nil fields are left unchanged.
type CoolerUpdate struct {
	Model                *string  `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	Series               *string  `json:"series,omitempty" validate:"omitempty,max=100"`
	HeatExchangeArea     *float64 `json:"heat_exchange_area,omitempty" validate:"omitempty,gt=0"`
	TubeVolume           *float64 `json:"tube_volume,omitempty" validate:"omitempty,gte=0"`
	AirFlowRate          *float64 `json:"air_flow_rate,omitempty" validate:"omitempty,gte=0"`
	TotalFanPower        *string  `json:"total_fan_power,omitempty" validate:"omitempty,max=100"`
	TotalFanCurrent      *string  `json:"total_fan_current,omitempty" validate:"omitempty,max=100"`
	AirFlow              *float64 `json:"air_flow,omitempty" validate:"omitempty,gte=0"`
	DefrostPower         *float64 `json:"defrost_power,omitempty" validate:"omitempty,gte=0"`
	DefrostWaterFlowRate *float64 `json:"defrost_water_flow_rate,omitempty" validate:"omitempty,gte=0"`
	PipeDia              *string  `json:"pipe_dia,omitempty" validate:"omitempty,max=100"`
	Noise                *float64 `json:"noise,omitempty" validate:"omitempty,gte=0"`
	Weight               *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	FinSpacing           *string  `json:"fin_spacing,omitempty" validate:"omitempty,max=100"`
	FanSpacingNum        *float64 `json:"fan_spacing_num,omitempty" validate:"omitempty,gte=0"`
	Comment              *string  `json:"comment,omitempty" validate:"omitempty,max=255"`
}

// IsEmpty reports whether the update changes nothing.
func (u *CoolerUpdate) IsEmpty() bool {
	return u.Model == nil && u.Series == nil && u.HeatExchangeArea == nil &&
		u.TubeVolume == nil && u.AirFlowRate == nil && u.TotalFanPower == nil &&
		u.TotalFanCurrent == nil && u.AirFlow == nil && u.DefrostPower == nil &&
		u.DefrostWaterFlowRate == nil && u.PipeDia == nil && u.Noise == nil &&
		u.Weight == nil && u.FinSpacing == nil && u.FanSpacingNum == nil && u.Comment == nil
}

// CapacityRecord is the rated cooling capacity of one cooler under one
// working status (SC1..SC5) and one refrigerant.
type CapacityRecord struct {
	ID            int64     `json:"id"`
	CoolerID      int64     `json:"cooler_id"`
	WorkingStatus string    `json:"working_status"`
	Refrigerant   string    `json:"refrigerant"`
	Capacity      float64   `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
}

// CorrectionEntry is a measured capacity correction coefficient for an
// exact (evaporating temperature, temperature difference) pair.
type CorrectionEntry struct {
	ID              int64     `json:"id"`
	EvaporatingTemp float64   `json:"evaporating_temp"`
	DeltaT          float64   `json:"delta_t"`
	Quant           float64   `json:"quant"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CoolerImport is one unit read from a data sheet together with its rated
// capacities. CoolerID on the capacities is assigned by the store.
type CoolerImport struct {
	Cooler     Cooler
	Capacities []CapacityRecord
}
