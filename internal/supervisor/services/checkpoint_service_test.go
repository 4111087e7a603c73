// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeCheckpointer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCheckpointer) Checkpoint(ctx context.Context) error {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("checkpoint called without deadline")
	}
	return f.err
}

func runCheckpoints(t *testing.T, db *fakeCheckpointer, atLeast int32) {
	t.Helper()
	svc := NewCheckpointService(db, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for db.calls.Load() < atLeast {
		if time.Now().After(deadline) {
			t.Fatalf("only %d checkpoints ran", db.calls.Load())
		}
		time.Sleep(2 * time.Millisecond)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestCheckpointService_Ticks(t *testing.T) {
	t.Parallel()
	runCheckpoints(t, &fakeCheckpointer{}, 3)
}

func TestCheckpointService_FailuresDoNotStopService(t *testing.T) {
	t.Parallel()
	runCheckpoints(t, &fakeCheckpointer{err: errors.New("io error")}, 3)
}

func TestNewCheckpointService_TimeoutCap(t *testing.T) {
	t.Parallel()

	if got := NewCheckpointService(&fakeCheckpointer{}, 10*time.Second).timeout; got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}
	if got := NewCheckpointService(&fakeCheckpointer{}, time.Hour).timeout; got != time.Minute {
		t.Errorf("timeout = %v, want 1m", got)
	}
	if got := NewCheckpointService(&fakeCheckpointer{}, time.Hour).String(); got != "duckdb-checkpoint" {
		t.Errorf("String() = %q", got)
	}
}
