// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package services

import (
	"context"
	"time"

	"github.com/tomtom215/coolerselect/internal/logging"
)

// Checkpointer is satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService periodically flushes the DuckDB write-ahead log into the
// catalog file. A failed checkpoint is logged and retried on the next tick.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	timeout  time.Duration
	name     string
}

// NewCheckpointService checkpoints db every interval.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	timeout := interval / 2
	if timeout > time.Minute {
		timeout = time.Minute
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		timeout:  timeout,
		name:     "duckdb-checkpoint",
	}
}

// Serve implements suture.Service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.checkpoint(ctx)
		}
	}
}

func (s *CheckpointService) checkpoint(ctx context.Context) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.db.Checkpoint(cctx); err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Str("service", s.name).Msg("Periodic checkpoint failed")
		}
		return
	}
	logging.Debug().
		Str("service", s.name).
		Dur("duration", time.Since(start)).
		Msg("Checkpoint complete")
}

// String names the service in supervisor logs.
func (s *CheckpointService) String() string {
	return s.name
}
