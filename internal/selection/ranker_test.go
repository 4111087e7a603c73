// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"slices"
	"testing"
)

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []Candidate
		target     float64
		limit      int
		want       []int64
	}{
		{
			name:       "nearest first",
			candidates: []Candidate{{1, 900}, {2, 1010}, {3, 700}},
			target:     1000,
			limit:      5,
			want:       []int64{2, 1, 3},
		},
		{
			name:       "empty",
			candidates: nil,
			target:     1000,
			limit:      5,
			want:       []int64{},
		},
		{
			name: "truncated to limit",
			candidates: []Candidate{
				{1, 100}, {2, 110}, {3, 120}, {4, 130}, {5, 140}, {6, 150}, {7, 160},
			},
			target: 150,
			limit:  5,
			want:   []int64{6, 5, 7, 4, 3},
		},
		{
			name:       "ties keep input order",
			candidates: []Candidate{{10, 90}, {11, 110}, {12, 100}, {13, 110}},
			target:     100,
			limit:      5,
			want:       []int64{12, 10, 11, 13},
		},
		{
			name:       "duplicate unit kept at nearest position",
			candidates: []Candidate{{1, 500}, {2, 980}, {1, 1001}},
			target:     1000,
			limit:      5,
			want:       []int64{1, 2},
		},
		{
			name:       "zero limit",
			candidates: []Candidate{{1, 1}},
			target:     1,
			limit:      0,
			want:       []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Rank(tt.candidates, tt.target, tt.limit)
			if got == nil {
				t.Fatal("Rank returned nil, want non-nil slice")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Rank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := []Candidate{{1, 900}, {2, 1010}, {3, 700}}
	orig := slices.Clone(in)
	_ = Rank(in, 1000, 5)
	if !slices.Equal(in, orig) {
		t.Errorf("input modified: %v, want %v", in, orig)
	}
}

func TestRank_Deterministic(t *testing.T) {
	t.Parallel()

	in := []Candidate{{1, 95}, {2, 105}, {3, 95}, {4, 105}, {5, 100}}
	first := Rank(in, 100, 5)
	for i := 0; i < 50; i++ {
		if got := Rank(in, 100, 5); !slices.Equal(got, first) {
			t.Fatalf("run %d: Rank() = %v, want %v", i, got, first)
		}
	}
}
