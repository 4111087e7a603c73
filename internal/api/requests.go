// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"strings"

	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// SelectRequest is the body of POST /api/v1/coolers/select. Temperatures
// and capacity are pointers so that a missing field is distinguishable from
// zero. fin_distance is accepted but does not affect the selection.
type SelectRequest struct {
	EvaporatingTemp    *float64 `json:"evaporating_temp" validate:"required"`
	RepoTemp           *float64 `json:"repo_temp" validate:"required"`
	RequiredCoolingCap *float64 `json:"required_cooling_cap" validate:"required"`
	Refrigerant        string   `json:"refrigerant,omitempty" validate:"omitempty,refrigerant"`
	SupplyMethod       string   `json:"supply_method,omitempty" validate:"omitempty,supply_method"`
	FinDistance        *float64 `json:"fin_distance,omitempty"`
}

// toSelection converts a validated request.
func (req *SelectRequest) toSelection() selection.Request {
	return selection.Request{
		EvaporatingTemp:    *req.EvaporatingTemp,
		RepoTemp:           *req.RepoTemp,
		RequiredCoolingCap: *req.RequiredCoolingCap,
		Refrigerant:        req.Refrigerant,
		SupplyMethod:       req.SupplyMethod,
		FinDistance:        req.FinDistance,
	}
}

// CoolerRequest is the body of POST /api/v1/coolers.
type CoolerRequest struct {
	Model                string   `json:"model" validate:"required,max=100"`
	Series               string   `json:"series,omitempty" validate:"max=100"`
	HeatExchangeArea     *float64 `json:"heat_exchange_area" validate:"required,gt=0"`
	TubeVolume           *float64 `json:"tube_volume,omitempty" validate:"omitempty,gte=0"`
	AirFlowRate          *float64 `json:"air_flow_rate,omitempty" validate:"omitempty,gte=0"`
	TotalFanPower        string   `json:"total_fan_power,omitempty" validate:"max=100"`
	TotalFanCurrent      string   `json:"total_fan_current,omitempty" validate:"max=100"`
	AirFlow              *float64 `json:"air_flow,omitempty" validate:"omitempty,gte=0"`
	DefrostPower         *float64 `json:"defrost_power,omitempty" validate:"omitempty,gte=0"`
	DefrostWaterFlowRate *float64 `json:"defrost_water_flow_rate,omitempty" validate:"omitempty,gte=0"`
	PipeDia              string   `json:"pipe_dia,omitempty" validate:"max=100"`
	Noise                *float64 `json:"noise,omitempty" validate:"omitempty,gte=0"`
	Weight               *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	FinSpacing           string   `json:"fin_spacing,omitempty" validate:"max=100"`
	FanSpacingNum        *float64 `json:"fan_spacing_num,omitempty" validate:"omitempty,gte=0"`
	Comment              string   `json:"comment,omitempty" validate:"max=255"`
}

func (req *CoolerRequest) toModel() *models.Cooler {
	return &models.Cooler{
		Model:                strings.TrimSpace(req.Model),
		Series:               req.Series,
		HeatExchangeArea:     *req.HeatExchangeArea,
		TubeVolume:           req.TubeVolume,
		AirFlowRate:          req.AirFlowRate,
		TotalFanPower:        req.TotalFanPower,
		TotalFanCurrent:      req.TotalFanCurrent,
		AirFlow:              req.AirFlow,
		DefrostPower:         req.DefrostPower,
		DefrostWaterFlowRate: req.DefrostWaterFlowRate,
		PipeDia:              req.PipeDia,
		Noise:                req.Noise,
		Weight:               req.Weight,
		FinSpacing:           req.FinSpacing,
		FanSpacingNum:        req.FanSpacingNum,
		Comment:              req.Comment,
	}
}

// CapacityRequest is the body of POST /api/v1/coolers/{id}/capacities.
// working_status is case-insensitive; refrigerant accepts lower case.
type CapacityRequest struct {
	WorkingStatus string   `json:"working_status" validate:"required,working_status"`
	Refrigerant   string   `json:"refrigerant" validate:"required,refrigerant"`
	Capacity      *float64 `json:"capacity" validate:"required,gt=0"`
}

func (req *CapacityRequest) normalize() {
	req.WorkingStatus = strings.ToUpper(strings.TrimSpace(req.WorkingStatus))
}

// CorrectionRequest is the body of POST /api/v1/corrections.
type CorrectionRequest struct {
	EvaporatingTemp *float64 `json:"evaporating_temp" validate:"required"`
	DeltaT          *float64 `json:"delta_t" validate:"required"`
	Quant           *float64 `json:"quant" validate:"required,gt=0"`
}

// CorrectionUpdateRequest is the body of PUT /api/v1/corrections/{id}.
type CorrectionUpdateRequest struct {
	Quant *float64 `json:"quant" validate:"required,gt=0"`
}
