// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package importer

import (
	"fmt"
	"io"

	"github.com/tomtom215/coolerselect/internal/models"
)

// ParseCorrectionGrid reads a correction coefficient grid. The header row
// holds evaporating temperatures (its first cell is a label), the first
// column holds temperature differences, and each inner cell holds the
// coefficient for that pair.
//
// Blank or non-numeric cells, and non-positive coefficients, are skipped
// and counted. Rows whose temperature difference is blank are ignored;
// columns whose header is blank likewise.
func ParseCorrectionGrid(r io.Reader, stats *ImportStats) ([]models.CorrectionEntry, error) {
	g, err := readGrid(r)
	if err != nil {
		return nil, err
	}
	if len(g) < 2 || g.width() < 2 {
		return nil, fmt.Errorf("correction grid needs a header row and a label column")
	}

	width := g.width()
	temps := make([]*float64, width)
	for col := 1; col < width; col++ {
		raw := g.cell(0, col)
		if raw == "" {
			continue
		}
		v, err := parseFloat(raw)
		if err != nil {
			stats.skip(Issue{Row: 1, Column: col + 1, Reason: fmt.Sprintf("evaporating temperature %q is not a number", raw)})
			continue
		}
		temps[col] = &v
	}

	var entries []models.CorrectionEntry
	for row := 1; row < len(g); row++ {
		rawDelta := g.cell(row, 0)
		if rawDelta == "" {
			continue
		}
		deltaT, err := parseFloat(rawDelta)
		if err != nil {
			stats.skip(Issue{Row: row + 1, Column: 1, Reason: fmt.Sprintf("delta T %q is not a number", rawDelta)})
			continue
		}

		for col := 1; col < width; col++ {
			if temps[col] == nil {
				continue
			}
			raw := g.cell(row, col)
			if raw == "" {
				stats.skip(Issue{Row: row + 1, Column: col + 1, Reason: "blank coefficient"})
				continue
			}
			quant, err := parseFloat(raw)
			if err != nil {
				stats.skip(Issue{Row: row + 1, Column: col + 1, Reason: fmt.Sprintf("coefficient %q is not a number", raw)})
				continue
			}
			if quant <= 0 {
				stats.skip(Issue{Row: row + 1, Column: col + 1, Reason: fmt.Sprintf("coefficient %v is not positive", quant)})
				continue
			}
			entries = append(entries, models.CorrectionEntry{
				EvaporatingTemp: *temps[col],
				DeltaT:          deltaT,
				Quant:           quant,
			})
		}
	}
	stats.Parsed += len(entries)
	return entries, nil
}
