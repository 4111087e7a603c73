// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/logging"
)

const (
	memoryPath       = ":memory:"
	defaultMaxMemory = "1GB"

	// bootstrapTimeout bounds the checkpoint and seed run while opening, and
	// the final checkpoint in Close.
	bootstrapTimeout = 30 * time.Second
)

// DB is the DuckDB-backed cooler catalog.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig

	// now stamps created_at, updated_at and deleted_at.
	now func() time.Time
}

// dsn renders cfg as a duckdb-go connection string. Extension autoloading is
// off; the catalog uses none and must not reach the network for them.
func dsn(cfg *config.DatabaseConfig) string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = defaultMaxMemory
	}

	q := url.Values{}
	q.Set("access_mode", "read_write")
	q.Set("threads", strconv.Itoa(threads))
	q.Set("max_memory", maxMemory)
	q.Set("preserve_insertion_order", strconv.FormatBool(cfg.PreserveInsertionOrder))
	q.Set("autoinstall_known_extensions", "false")
	q.Set("autoload_known_extensions", "false")
	return cfg.Path + "?" + q.Encode()
}

func isMemory(cfg *config.DatabaseConfig) bool {
	return cfg.Path == memoryPath
}

// New opens (or creates) the catalog at cfg.Path, brings the schema up to
// date and, when cfg.SeedSampleData is set, loads the sample catalog into an
// empty database.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if !isMemory(cfg) {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	db := &DB{
		conn: conn,
		cfg:  cfg,
		now:  func() time.Time { return time.Now().UTC() },
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()
	if err := db.bootstrap(ctx); err != nil {
		closeQuietly(conn)
		return nil, err
	}
	return db, nil
}

func (db *DB) bootstrap(ctx context.Context) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"create tables", db.createTables},
		{"migrate schema", db.migrate},
		{"create indexes", db.createIndexes},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Checkpoint after schema setup failed")
	}

	if !db.cfg.SeedSampleData {
		return nil
	}
	seeded, err := db.SeedSampleData(ctx)
	if err != nil {
		return fmt.Errorf("seed sample catalog: %w", err)
	}
	if seeded {
		logging.Info().Msg("Seeded empty catalog with sample data")
	} else {
		logging.Debug().Msg("Catalog not empty, sample data skipped")
	}
	return nil
}

// Conn exposes the pool, for health checks and pool metrics.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close folds the WAL into the database file and closes the pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Checkpoint before close failed")
	}
	return db.conn.Close()
}

var errClosed = errors.New("catalog database is not open")

func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return errClosed
	}
	return db.conn.PingContext(ctx)
}

// Checkpoint flushes the WAL into the database file. It is a no-op for an
// in-memory catalog.
func (db *DB) Checkpoint(ctx context.Context) error {
	if isMemory(db.cfg) {
		return nil
	}
	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}
