// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package models

// Pagination is a 1-based page request.
type Pagination struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// Pages returns the page count for total rows.
func (p Pagination) Pages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// CoolerFilter narrows a cooler listing. Zero values mean "no constraint".
type CoolerFilter struct {
	Model               string
	Series              string
	MinHeatExchangeArea *float64
	MaxHeatExchangeArea *float64
}

// CorrectionFilter narrows a correction entry listing by inclusive ranges.
type CorrectionFilter struct {
	MinEvaporatingTemp *float64
	MaxEvaporatingTemp *float64
	MinDeltaT          *float64
	MaxDeltaT          *float64
}

// Page is one page of a listing plus the size of the full result.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}
