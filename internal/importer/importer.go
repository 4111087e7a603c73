// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/database"
	"github.com/tomtom215/coolerselect/internal/events"
	"github.com/tomtom215/coolerselect/internal/metrics"
	"github.com/tomtom215/coolerselect/internal/models"
)

// DefaultBatchSize is used when the configured batch size is not positive.
const DefaultBatchSize = 500

var (
	// ErrImportInProgress is returned when an import is already running.
	ErrImportInProgress = errors.New("import already in progress")

	// ErrInvalidFile wraps every parse failure; nothing was written.
	ErrInvalidFile = errors.New("invalid import file")
)

// Store writes imported rows. *database.DB satisfies it.
type Store interface {
	ImportCoolers(ctx context.Context, batch []models.CoolerImport) (database.BatchResult, error)
	UpsertCorrections(ctx context.Context, batch []models.CorrectionEntry) (database.BatchResult, error)
}

// Notifier announces committed imports. *events.Publisher satisfies it.
type Notifier interface {
	NotifyImport(ctx context.Context, entity events.Entity, count int)
}

// Importer loads cooler sheets and correction grids into the catalog. Only
// one import runs at a time.
type Importer struct {
	store     Store
	notifier  Notifier
	batchSize int
	logger    zerolog.Logger

	mu      sync.Mutex
	running bool
}

// NewImporter creates an importer. notifier may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewImporter(cfg *config.ImportConfig, store Store, notifier Notifier, logger zerolog.Logger) *Importer {
	batchSize := DefaultBatchSize
	if cfg != nil && cfg.BatchSize > 0 {
		batchSize = cfg.BatchSize
	}
	return &Importer{
		store:     store,
		notifier:  notifier,
		batchSize: batchSize,
		logger:    logger.With().Str("component", "importer").Logger(),
	}
}

// ImportCoolers parses a cooler sheet and writes it in batches. Units are
// matched by model: existing units are overwritten and their capacity
// records replaced.
//
// Batches already committed stay committed when a later batch fails; the
// returned stats cover them and the error names the failed batch.
func (i *Importer) ImportCoolers(ctx context.Context, r io.Reader) (*ImportStats, error) {
	return i.run(ctx, KindCoolers, func(stats *ImportStats) error {
		units, err := ParseCoolerSheet(r, stats)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		return writeBatches(ctx, units, i.batchSize, stats, func(batch []models.CoolerImport) (database.BatchResult, error) {
			return i.store.ImportCoolers(ctx, batch)
		})
	})
}

// ImportCorrections parses a correction grid and upserts it in batches.
func (i *Importer) ImportCorrections(ctx context.Context, r io.Reader) (*ImportStats, error) {
	return i.run(ctx, KindCorrections, func(stats *ImportStats) error {
		entries, err := ParseCorrectionGrid(r, stats)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		return writeBatches(ctx, entries, i.batchSize, stats, func(batch []models.CorrectionEntry) (database.BatchResult, error) {
			return i.store.UpsertCorrections(ctx, batch)
		})
	})
}

// IsRunning reports whether an import is in progress.
func (i *Importer) IsRunning() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.running
}

func (i *Importer) run(ctx context.Context, kind Kind, fn func(*ImportStats) error) (*ImportStats, error) {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, ErrImportInProgress
	}
	i.running = true
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.running = false
		i.mu.Unlock()
	}()

	stats := &ImportStats{Kind: kind, StartTime: time.Now()}
	err := fn(stats)
	stats.EndTime = time.Now()

	metrics.RecordImport(string(kind), stats.Inserted, stats.Updated, stats.Skipped, stats.Duration())

	if written := stats.Written(); written > 0 && i.notifier != nil {
		i.notifier.NotifyImport(ctx, entityFor(kind), written)
	}

	event := i.logger.Info()
	if err != nil {
		event = i.logger.Warn().Err(err)
	}
	event.
		Str("kind", string(kind)).
		Int("parsed", stats.Parsed).
		Int("inserted", stats.Inserted).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("batches", stats.Batches).
		Dur("elapsed", stats.Duration()).
		Msg("Catalog import finished")

	return stats, err
}

// writeBatches commits items in chunks of size and accumulates the counts.
func writeBatches[T any](
	ctx context.Context,
	items []T,
	size int,
	stats *ImportStats,
	write func([]T) (database.BatchResult, error),
) error {
	for start := 0; start < len(items); start += size {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+size, len(items))

		result, err := write(items[start:end])
		if err != nil {
			return fmt.Errorf("import batch %d (items %d-%d): %w", stats.Batches+1, start+1, end, err)
		}
		stats.Inserted += result.Inserted
		stats.Updated += result.Updated
		stats.Capacities += result.Capacities
		stats.Batches++
	}
	return nil
}

func entityFor(kind Kind) events.Entity {
	if kind == KindCorrections {
		return events.EntityCorrection
	}
	return events.EntityCooler
}
