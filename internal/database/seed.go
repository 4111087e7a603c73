// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/coolerselect/internal/models"
)

// sampleUnit is one seeded DD-series unit. sc holds the R404A capacities
// in kW for SC1..SC5.
type sampleUnit struct {
	model  string
	area   float64
	fans   string
	weight float64
	sc     [5]float64
}

var sampleUnits = []sampleUnit{
	{"DD-40/200", 200, "2×0.55", 185, [5]float64{59.2, 40.0, 30.8, 25.5, 24.1}},
	{"DD-60/300", 300, "3×0.55", 260, [5]float64{88.9, 60.0, 46.1, 38.3, 36.2}},
	{"DD-80/400", 400, "3×0.75", 330, [5]float64{118.5, 80.0, 61.5, 51.0, 48.2}},
	{"DD-100/500", 500, "4×0.75", 410, [5]float64{148.1, 100.0, 76.9, 63.8, 60.3}},
	{"DD-120/600", 600, "4×1.1", 480, [5]float64{177.7, 120.0, 92.3, 76.6, 72.4}},
	{"DD-150/750", 750, "5×1.1", 590, [5]float64{222.2, 150.0, 115.4, 95.7, 90.5}},
	{"DD-180/900", 900, "6×1.1", 700, [5]float64{266.6, 180.0, 138.4, 114.8, 108.5}},
	{"DD-220/1100", 1100, "6×1.5", 845, [5]float64{325.8, 220.0, 169.2, 140.4, 132.7}},
}

// sampleCorrections are measured coefficients around the SC2 reference point.
var sampleCorrections = []models.CorrectionEntry{
	{EvaporatingTemp: -10, DeltaT: 6, Quant: 1.062},
	{EvaporatingTemp: -10, DeltaT: 8, Quant: 1.198},
	{EvaporatingTemp: -10, DeltaT: 10, Quant: 1.341},
	{EvaporatingTemp: -25, DeltaT: 6, Quant: 0.804},
	{EvaporatingTemp: -25, DeltaT: 8, Quant: 0.913},
}

// SeedSampleData fills an empty catalog with a small DD-series catalog.
// It reports whether anything was written.
func (db *DB) SeedSampleData(ctx context.Context) (bool, error) {
	n, err := db.CountActiveCoolers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	statuses := [5]string{"SC1", "SC2", "SC3", "SC4", "SC5"}
	batch := make([]models.CoolerImport, 0, len(sampleUnits))
	for _, u := range sampleUnits {
		weight := u.weight
		item := models.CoolerImport{
			Cooler: models.Cooler{
				Model:            u.model,
				Series:           "DD",
				HeatExchangeArea: u.area,
				TotalFanPower:    u.fans,
				Weight:           &weight,
				FinSpacing:       "φ=6",
			},
		}
		spacing := 6.0
		item.Cooler.FanSpacingNum = &spacing
		for i, c := range u.sc {
			item.Capacities = append(item.Capacities, models.CapacityRecord{
				WorkingStatus: statuses[i],
				Refrigerant:   "R404A",
				Capacity:      c,
			})
		}
		batch = append(batch, item)
	}

	if _, err := db.ImportCoolers(ctx, batch); err != nil {
		return false, fmt.Errorf("failed to seed coolers: %w", err)
	}
	if _, err := db.UpsertCorrections(ctx, sampleCorrections); err != nil {
		return false, fmt.Errorf("failed to seed corrections: %w", err)
	}
	return true, nil
}
