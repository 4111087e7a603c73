// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package importer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// Row layout of a cooler sheet (0-based). Each column after the first
// describes one unit; the first column holds row labels.
const (
	rowModel = iota
	rowSC1
	rowSC2
	rowSC3
	rowSC4
	rowSC5
	rowRefrigerant
	rowHeatExchangeArea
	rowTubeVolume
	rowAirFlowRate
	rowTotalFanPower
	rowTotalFanCurrent
	rowAirFlow
	rowDefrostPower
	rowPipeDia
	rowNoise
	rowWeight
	rowSeries
	rowComment
	rowFinSpacing

	// minSheetRows is the shortest sheet that can describe a unit: model,
	// the five capacities, refrigerant and heat exchange area.
	minSheetRows = rowHeatExchangeArea + 1
)

var capacityRows = []struct {
	row    int
	bucket selection.Bucket
}{
	{rowSC1, selection.BucketSC1},
	{rowSC2, selection.BucketSC2},
	{rowSC3, selection.BucketSC3},
	{rowSC4, selection.BucketSC4},
	{rowSC5, selection.BucketSC5},
}

var optionalFloatRows = []struct {
	row  int
	name string
	set  func(c *models.Cooler, v *float64)
}{
	{rowTubeVolume, "tube_volume", func(c *models.Cooler, v *float64) { c.TubeVolume = v }},
	{rowAirFlowRate, "air_flow_rate", func(c *models.Cooler, v *float64) { c.AirFlowRate = v }},
	{rowAirFlow, "air_flow", func(c *models.Cooler, v *float64) { c.AirFlow = v }},
	{rowDefrostPower, "defrost_power", func(c *models.Cooler, v *float64) { c.DefrostPower = v }},
	{rowNoise, "noise", func(c *models.Cooler, v *float64) { c.Noise = v }},
	{rowWeight, "weight", func(c *models.Cooler, v *float64) { c.Weight = v }},
}

var finSpacingPattern = regexp.MustCompile(`=(\d+\.?\d*)`)

// FanSpacingNum extracts the numeric spacing from a fin spacing label such
// as "C04=4.5mm". It returns nil when the label carries no "=<number>".
func FanSpacingNum(finSpacing string) *float64 {
	m := finSpacingPattern.FindStringSubmatch(finSpacing)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseCoolerSheet reads a column-per-unit cooler sheet. Columns with an
// empty model cell are ignored; a unit with an invalid cell is skipped as a
// whole and reported in stats. Empty capacity cells create no record.
func ParseCoolerSheet(r io.Reader, stats *ImportStats) ([]models.CoolerImport, error) {
	g, err := readGrid(r)
	if err != nil {
		return nil, err
	}
	if len(g) < minSheetRows {
		return nil, fmt.Errorf("cooler sheet has %d rows, need at least %d", len(g), minSheetRows)
	}

	units := make([]models.CoolerImport, 0, g.width())
	for col := 1; col < g.width(); col++ {
		if g.cell(rowModel, col) == "" {
			continue
		}
		unit, issue := parseUnitColumn(g, col)
		if issue != nil {
			stats.skip(*issue)
			continue
		}
		units = append(units, unit)
	}
	stats.Parsed += len(units)
	return units, nil
}

// parseUnitColumn maps one sheet column to a unit and its capacities.
func parseUnitColumn(g grid, col int) (models.CoolerImport, *Issue) {
	column := col + 1
	fail := func(row int, format string, args ...any) (models.CoolerImport, *Issue) {
		return models.CoolerImport{}, &Issue{
			Row:    row + 1,
			Column: column,
			Reason: fmt.Sprintf("%s: %s", g.cell(rowModel, col), fmt.Sprintf(format, args...)),
		}
	}

	model := g.cell(rowModel, col)
	if len(model) > 100 {
		return fail(rowModel, "model longer than 100 characters")
	}

	area, err := parseFloat(g.cell(rowHeatExchangeArea, col))
	if err != nil || area <= 0 {
		return fail(rowHeatExchangeArea, "heat exchange area %q is not a positive number", g.cell(rowHeatExchangeArea, col))
	}

	cooler := models.Cooler{
		Model:            model,
		HeatExchangeArea: area,
		TotalFanPower:    g.cell(rowTotalFanPower, col),
		TotalFanCurrent:  g.cell(rowTotalFanCurrent, col),
		PipeDia:          g.cell(rowPipeDia, col),
		Series:           g.cell(rowSeries, col),
		Comment:          g.cell(rowComment, col),
		FinSpacing:       g.cell(rowFinSpacing, col),
	}
	cooler.FanSpacingNum = FanSpacingNum(cooler.FinSpacing)

	for _, f := range optionalFloatRows {
		v, err := parseOptionalFloat(g.cell(f.row, col))
		if err != nil {
			return fail(f.row, "%s %q is not a number", f.name, g.cell(f.row, col))
		}
		if v != nil && *v < 0 {
			return fail(f.row, "%s must not be negative", f.name)
		}
		f.set(&cooler, v)
	}

	var capacities []models.CapacityRecord
	for _, cr := range capacityRows {
		raw := g.cell(cr.row, col)
		if raw == "" {
			continue
		}
		capacity, err := parseFloat(raw)
		if err != nil || capacity <= 0 {
			return fail(cr.row, "%s capacity %q is not a positive number", cr.bucket, raw)
		}
		capacities = append(capacities, models.CapacityRecord{
			WorkingStatus: string(cr.bucket),
			Capacity:      capacity,
		})
	}

	if len(capacities) > 0 {
		raw := g.cell(rowRefrigerant, col)
		if raw == "" {
			return fail(rowRefrigerant, "refrigerant is required when capacities are given")
		}
		refrigerant := strings.ToUpper(raw)
		if r, err := selection.ParseRefrigerant(raw); err == nil {
			refrigerant = string(r)
		}
		for i := range capacities {
			capacities[i].Refrigerant = refrigerant
		}
	}

	return models.CoolerImport{Cooler: cooler, Capacities: capacities}, nil
}
