// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"sort"
	"strings"

	"github.com/tomtom215/coolerselect/internal/models"
)

// Bucket is a discrete working status derived from the evaporating temperature.
type Bucket string

const (
	BucketSC1 Bucket = "SC1"
	BucketSC2 Bucket = "SC2"
	BucketSC3 Bucket = "SC3"
	BucketSC4 Bucket = "SC4"
	BucketSC5 Bucket = "SC5"
)

// Buckets lists every working status in classification order.
func Buckets() []Bucket {
	return []Bucket{BucketSC1, BucketSC2, BucketSC3, BucketSC4, BucketSC5}
}

// ParseBucket converts a catalog working status code into a Bucket.
func ParseBucket(s string) (Bucket, error) {
	b := Bucket(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Buckets() {
		if b == known {
			return b, nil
		}
	}
	return "", &UnknownValueError{Field: "working_status", Value: s}
}

// SupplyMethod is how refrigerant reaches the evaporator.
type SupplyMethod string

const (
	DirectExpansion SupplyMethod = "direct-expansion"
	PumpSupplied    SupplyMethod = "pump-supplied"
)

// supplyMethodAliases maps accepted spellings to canonical supply methods.
// The Chinese labels are the ones used on the manufacturer data sheets.
var supplyMethodAliases = map[string]SupplyMethod{
	"direct-expansion": DirectExpansion,
	"direct":           DirectExpansion,
	"直膨":               DirectExpansion,
	"pump-supplied":    PumpSupplied,
	"pump":             PumpSupplied,
	"泵供液":              PumpSupplied,
}

// ParseSupplyMethod converts a request value into a canonical SupplyMethod.
func ParseSupplyMethod(s string) (SupplyMethod, error) {
	if m, ok := supplyMethodAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", &UnknownValueError{Field: "supply_method", Value: s}
}

// Valid reports whether m is a canonical supply method.
func (m SupplyMethod) Valid() bool {
	return m == DirectExpansion || m == PumpSupplied
}

// Refrigerant is a refrigerant code as printed on capacity tables.
type Refrigerant string

const (
	R404A Refrigerant = "R404A"
	R22   Refrigerant = "R22"
	R407C Refrigerant = "R407C"
	R410A Refrigerant = "R410A"
	R507C Refrigerant = "R507C"
	R23   Refrigerant = "R23"
)

// ParseRefrigerant normalizes a refrigerant code ("r404a" -> R404A) and
// rejects codes without a factor row.
func ParseRefrigerant(s string) (Refrigerant, error) {
	r := Refrigerant(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := refrigerantFactors[refrigerantMethod{r, DirectExpansion}]; ok {
		return r, nil
	}
	return "", &UnknownValueError{Field: "refrigerant", Value: s}
}

// Refrigerants lists the refrigerants known to the factor table, sorted.
func Refrigerants() []Refrigerant {
	seen := make(map[Refrigerant]struct{})
	for k := range refrigerantFactors {
		seen[k.refrigerant] = struct{}{}
	}
	out := make([]Refrigerant, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Request is one operating requirement. Refrigerant and SupplyMethod may be
// empty, in which case the engine defaults apply. FinDistance is accepted
// but does not influence the calculation.
type Request struct {
	EvaporatingTemp    float64  `json:"evaporating_temp"`
	RepoTemp           float64  `json:"repo_temp"`
	RequiredCoolingCap float64  `json:"required_cooling_cap"`
	Refrigerant        string   `json:"refrigerant,omitempty"`
	SupplyMethod       string   `json:"supply_method,omitempty"`
	FinDistance        *float64 `json:"fin_distance,omitempty"`
}

// DeltaT is the room temperature minus the evaporating temperature.
func (r Request) DeltaT() float64 {
	return r.RepoTemp - r.EvaporatingTemp
}

// QuantSource tells where the correction coefficient came from.
type QuantSource string

const (
	QuantMeasured QuantSource = "measured"
	QuantFallback QuantSource = "fallback"
)

// Calculation records the intermediate values of one selection.
type Calculation struct {
	Bucket            Bucket       `json:"bucket"`
	DeltaT            float64      `json:"delta_t"`
	Quant             float64      `json:"quant"`
	QuantSource       QuantSource  `json:"quant_source"`
	RefrigerantFactor float64      `json:"refrigerant_factor"`
	TargetCapacity    float64      `json:"target_capacity"`
	Refrigerant       Refrigerant  `json:"refrigerant"`
	SupplyMethod      SupplyMethod `json:"supply_method"`
	Candidates        int          `json:"candidates"`
}

// Result is the ranked selection. Total equals len(Items), not the size of
// the candidate pool.
type Result struct {
	Items       []models.Cooler `json:"items"`
	Total       int             `json:"total"`
	Calculation Calculation     `json:"-"`
}
