// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package importer loads manufacturer data into the cooler catalog.

Two CSV layouts are accepted, both exported from the manufacturer
spreadsheets.

# Cooler sheet

One column per unit; the first column holds row labels:

	row  1  model
	rows 2-6  rated capacity under SC1..SC5 (kW)
	row  7  refrigerant
	row  8  heat exchange area
	row  9  tube volume
	row 10  air flow rate
	row 11  total fan power
	row 12  total fan current
	row 13  air flow (throw)
	row 14  defrost power
	row 15  pipe diameter
	row 16  noise
	row 17  weight
	row 18  series
	row 19  comment
	row 20  fin spacing

Rows 9 onward are optional. The numeric fin spacing ("C04=4.5mm" gives 4.5)
is stored alongside the label. Empty capacity cells create no record. A unit
with an unparseable cell is skipped as a whole.

# Correction grid

	delta T \ Te, -10,   -5,    0
	6,            0.95,  0.97,  1.0
	8,            1.0,   1.02,  1.05

The header row holds evaporating temperatures, the first column holds
temperature differences. Blank or non-numeric cells are skipped and counted.

# Writes

Rows are written in batches of ImportConfig.BatchSize, one transaction per
batch. Coolers are matched by model and corrections by their temperature
pair, so re-importing a sheet updates rather than duplicates. Every import
that writes rows publishes a catalog change event.
*/
package importer
