// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package selection implements cooler selection: given an operating
requirement it normalizes the requested cooling capacity into a reference
capacity and ranks the catalog's rated capacities by closeness to it.

# Pipeline

 1. Classify the evaporating temperature into a working status bucket (SC1..SC5).
 2. Resolve the temperature correction coefficient ("quant"): a measured
    catalog entry for the exact (evaporating temperature, delta T) pair wins,
    otherwise the static bucket × supply method table is used.
 3. Resolve the refrigerant factor from the refrigerant × supply method table.
 4. target = required capacity / quant / refrigerant factor.
 5. Rank the bucket's capacity records for the refrigerant by |capacity - target|
    and keep the nearest Config.Limit units.
 6. Fetch the units and return them in rank order.

Classification, coefficient lookup, target calculation and ranking are pure
functions. Only the Engine touches the Catalog, and every catalog call runs
under Config.CatalogTimeout.

# Errors

Client input problems are reported as *RangeError, *UnknownValueError or
*DomainRangeError. Catalog failures are reported as *InfrastructureError
carrying the name of the failed call. A missing correction entry and an empty
candidate set are not errors.
*/
package selection
