// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import "math"

// MaxEvaporatingTemp is the highest classifiable evaporating temperature in °C.
const MaxEvaporatingTemp = 10.0

// bucketRange is an inclusive evaporating temperature range.
type bucketRange struct {
	min, max float64
	bucket   Bucket
}

// classificationOrder is evaluated top to bottom; the first match wins.
// Values matching no range fall through to SC5. That includes everything
// below -35 and the open gaps (-5,-4), (-16,-15) and (-28,-27).
var classificationOrder = [...]bucketRange{
	{min: -4, max: 10, bucket: BucketSC1},
	{min: -15, max: -5, bucket: BucketSC2},
	{min: -27, max: -16, bucket: BucketSC3},
	{min: -35, max: -28, bucket: BucketSC4},
}

// Classify maps an evaporating temperature to its working status bucket.
// Temperatures above MaxEvaporatingTemp, and NaN, return *RangeError.
func Classify(evaporatingTemp float64) (Bucket, error) {
	if math.IsNaN(evaporatingTemp) || evaporatingTemp > MaxEvaporatingTemp {
		return "", &RangeError{Value: evaporatingTemp, Max: MaxEvaporatingTemp}
	}
	for _, r := range classificationOrder {
		if evaporatingTemp >= r.min && evaporatingTemp <= r.max {
			return r.bucket, nil
		}
	}
	return BucketSC5, nil
}
