// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import "math"

// ComputeTarget normalizes a required capacity into the reference capacity
// the catalog is rated at: requiredCap / quant / factor.
//
// Both divisors come from data (a measured correction entry can be any
// number), so non-positive or NaN values return *DomainRangeError.
func ComputeTarget(requiredCap, quant, factor float64) (float64, error) {
	if math.IsNaN(quant) || quant <= 0 {
		return 0, &DomainRangeError{Name: "quant", Value: quant}
	}
	if math.IsNaN(factor) || factor <= 0 {
		return 0, &DomainRangeError{Name: "refrigerant factor", Value: factor}
	}
	return requiredCap / quant / factor, nil
}
