// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

type bucketMethod struct {
	bucket Bucket
	method SupplyMethod
}

type refrigerantMethod struct {
	refrigerant Refrigerant
	method      SupplyMethod
}

// fallbackQuant is the coarse correction coefficient used when the catalog
// has no measured entry. Total over Buckets() × {DirectExpansion, PumpSupplied}.
// Read-only after init.
var fallbackQuant = map[bucketMethod]float64{
	{BucketSC1, DirectExpansion}: 1.481,
	{BucketSC1, PumpSupplied}:    1.403,
	{BucketSC2, DirectExpansion}: 1.000,
	{BucketSC2, PumpSupplied}:    1.005,
	{BucketSC3, DirectExpansion}: 0.769,
	{BucketSC3, PumpSupplied}:    0.758,
	{BucketSC4, DirectExpansion}: 0.638,
	{BucketSC4, PumpSupplied}:    0.616,
	{BucketSC5, DirectExpansion}: 0.603,
	{BucketSC5, PumpSupplied}:    0.600,
}

// refrigerantFactors is the refrigerant correction matrix. Read-only after init.
var refrigerantFactors = map[refrigerantMethod]float64{
	{R404A, DirectExpansion}: 1.000,
	{R404A, PumpSupplied}:    1.005,
	{R22, DirectExpansion}:   0.927,
	{R22, PumpSupplied}:      0.999,
	{R407C, DirectExpansion}: 0.980,
	{R407C, PumpSupplied}:    1.027,
	{R410A, DirectExpansion}: 0.995,
	{R410A, PumpSupplied}:    1.066,
	{R507C, DirectExpansion}: 0.961,
	{R507C, PumpSupplied}:    0.999,
	{R23, DirectExpansion}:   1.017,
	{R23, PumpSupplied}:      1.099,
}

// FallbackQuant returns the static correction coefficient for a bucket and supply method.
func FallbackQuant(bucket Bucket, method SupplyMethod) (float64, error) {
	if !method.Valid() {
		return 0, &UnknownValueError{Field: "supply_method", Value: string(method)}
	}
	q, ok := fallbackQuant[bucketMethod{bucket, method}]
	if !ok {
		return 0, &UnknownValueError{Field: "working_status", Value: string(bucket)}
	}
	return q, nil
}

// RefrigerantFactor returns the correction factor for a refrigerant and supply method.
func RefrigerantFactor(refrigerant Refrigerant, method SupplyMethod) (float64, error) {
	if !method.Valid() {
		return 0, &UnknownValueError{Field: "supply_method", Value: string(method)}
	}
	f, ok := refrigerantFactors[refrigerantMethod{refrigerant, method}]
	if !ok {
		return 0, &UnknownValueError{Field: "refrigerant", Value: string(refrigerant)}
	}
	return f, nil
}
