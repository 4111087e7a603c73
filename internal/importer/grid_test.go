// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package importer

import (
	"strings"
	"testing"
)

const correctionGrid = `delta T \ Te,-10,-5,0
6,0.95,0.97,1.0
8,1.0,,1.05
,1.2,1.2,1.2
x,1,1,1
10,n/a,1.1,0
`

func TestParseCorrectionGrid(t *testing.T) {
	t.Parallel()
	stats := &ImportStats{}

	entries, err := ParseCorrectionGrid(strings.NewReader(correctionGrid), stats)
	if err != nil {
		t.Fatalf("ParseCorrectionGrid() error = %v", err)
	}

	// Row 6: three cells. Row 8: two (one blank). Blank delta row ignored.
	// Row "x" skipped as a whole. Row 10: one (n/a and 0 rejected).
	if len(entries) != 6 {
		t.Fatalf("len(entries) = %d, want 6: %+v", len(entries), entries)
	}
	if stats.Parsed != 6 {
		t.Errorf("Parsed = %d, want 6", stats.Parsed)
	}
	// blank cell + bad delta row + n/a + zero coefficient
	if stats.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4: %v", stats.Skipped, stats.Issues)
	}

	first := entries[0]
	if first.EvaporatingTemp != -10 || first.DeltaT != 6 || first.Quant != 0.95 {
		t.Errorf("entries[0] = %+v, want Te=-10 dT=6 quant=0.95", first)
	}
	last := entries[len(entries)-1]
	if last.EvaporatingTemp != -5 || last.DeltaT != 10 || last.Quant != 1.1 {
		t.Errorf("last entry = %+v, want Te=-5 dT=10 quant=1.1", last)
	}
}

func TestParseCorrectionGrid_IssuePositions(t *testing.T) {
	t.Parallel()
	stats := &ImportStats{}

	if _, err := ParseCorrectionGrid(strings.NewReader("label,-10\n8,abc\n"), stats); err != nil {
		t.Fatalf("ParseCorrectionGrid() error = %v", err)
	}
	if len(stats.Issues) != 1 {
		t.Fatalf("Issues = %v, want one", stats.Issues)
	}
	if got := stats.Issues[0]; got.Row != 2 || got.Column != 2 {
		t.Errorf("issue at row %d column %d, want row 2 column 2", got.Row, got.Column)
	}
}

func TestParseCorrectionGrid_BadHeaderColumnSkipped(t *testing.T) {
	t.Parallel()
	stats := &ImportStats{}

	entries, err := ParseCorrectionGrid(strings.NewReader("label,-10,warm,\n8,1.0,1.0,1.0\n"), stats)
	if err != nil {
		t.Fatalf("ParseCorrectionGrid() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d, want 1", len(entries))
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (the bad header)", stats.Skipped)
	}
}

func TestParseCorrectionGrid_TooSmall(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"label,-10\n", "label\n8\n"} {
		if _, err := ParseCorrectionGrid(strings.NewReader(in), &ImportStats{}); err == nil {
			t.Errorf("ParseCorrectionGrid(%q) expected error", in)
		}
	}
}

func TestImportStats_IssueCap(t *testing.T) {
	t.Parallel()
	stats := &ImportStats{}
	for i := 0; i < MaxReportedIssues+10; i++ {
		stats.skip(Issue{Row: i, Reason: "bad"})
	}
	if stats.Skipped != MaxReportedIssues+10 {
		t.Errorf("Skipped = %d, want %d", stats.Skipped, MaxReportedIssues+10)
	}
	if len(stats.Issues) != MaxReportedIssues {
		t.Errorf("len(Issues) = %d, want %d", len(stats.Issues), MaxReportedIssues)
	}
}
