// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"math"
	"sort"
)

// Candidate is one rated capacity of one unit.
type Candidate struct {
	UnitID   int64
	Capacity float64
}

// Rank orders candidates by |capacity - target| ascending and returns the
// unit IDs of the first limit entries. Equal distances keep their input
// order. A unit listed more than once is kept at its nearest position only.
// The input slice is not modified.
func Rank(candidates []Candidate, target float64, limit int) []int64 {
	if len(candidates) == 0 || limit <= 0 {
		return []int64{}
	}

	type scored struct {
		id    int64
		delta float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{id: c.UnitID, delta: math.Abs(c.Capacity - target)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].delta < ranked[j].delta
	})

	ids := make([]int64, 0, min(limit, len(ranked)))
	seen := make(map[int64]struct{}, cap(ids))
	for _, s := range ranked {
		if len(ids) == limit {
			break
		}
		if _, dup := seen[s.id]; dup {
			continue
		}
		seen[s.id] = struct{}{}
		ids = append(ids, s.id)
	}
	return ids
}
