// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package importer

import (
	"fmt"
	"time"
)

// Kind names an import format.
type Kind string

const (
	KindCoolers     Kind = "coolers"
	KindCorrections Kind = "corrections"
)

// MaxReportedIssues caps the issues kept in ImportStats. Skipped still
// counts every one.
const MaxReportedIssues = 100

// Issue describes a cell or unit that was skipped. Row and Column are
// 1-based positions in the CSV file; zero means "whole row" or "whole column".
type Issue struct {
	Row    int    `json:"row,omitempty"`
	Column int    `json:"column,omitempty"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("row %d, column %d: %s", i.Row, i.Column, i.Reason)
}

// ImportStats summarizes one import.
type ImportStats struct {
	Kind Kind `json:"kind"`

	// Parsed is the number of units (cooler sheets) or cells (correction
	// grids) that passed parsing.
	Parsed int `json:"parsed"`

	// Inserted and Updated count catalog rows written.
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`

	// Capacities is the number of capacity records written (cooler sheets).
	Capacities int `json:"capacities,omitempty"`

	// Skipped counts units or cells rejected during parsing.
	Skipped int `json:"skipped"`

	// Batches is the number of committed transactions.
	Batches int `json:"batches"`

	Issues []Issue `json:"issues,omitempty"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Duration returns the duration of the import.
func (s *ImportStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Written returns the number of catalog rows inserted or updated.
func (s *ImportStats) Written() int {
	return s.Inserted + s.Updated
}

func (s *ImportStats) skip(issue Issue) {
	s.Skipped++
	if len(s.Issues) < MaxReportedIssues {
		s.Issues = append(s.Issues, issue)
	}
}
