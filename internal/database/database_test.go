// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/models"
)

// testDBSemaphore serializes DuckDB usage across tests. Concurrent CGO calls
// from many parallel tests can hang under CI resource pressure, so the
// semaphore is held for the whole test, not just database creation.
var testDBSemaphore = make(chan struct{}, 1)

var testDBMutex sync.Mutex

// setupTestDB creates an in-memory catalog that is closed when the test ends.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	return setupTestDBWithConfig(t, &config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB"})
}

func setupTestDBWithConfig(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		testDBMutex.Lock()
		db, err := New(cfg)
		testDBMutex.Unlock()
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error: %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func floatPtr(v float64) *float64 { return &v }

func mustCreateCooler(t *testing.T, db *DB, model string, area float64) *models.Cooler {
	t.Helper()
	c, err := db.CreateCooler(testContext(t), &models.Cooler{Model: model, Series: "DD", HeatExchangeArea: area})
	if err != nil {
		t.Fatalf("CreateCooler(%s) error: %v", model, err)
	}
	return c
}

func mustCreateCapacity(t *testing.T, db *DB, coolerID int64, status, refrigerant string, capacity float64) *models.CapacityRecord {
	t.Helper()
	r, err := db.CreateCapacity(testContext(t), &models.CapacityRecord{
		CoolerID: coolerID, WorkingStatus: status, Refrigerant: refrigerant, Capacity: capacity,
	})
	if err != nil {
		t.Fatalf("CreateCapacity(%d, %s, %s) error: %v", coolerID, status, refrigerant, err)
	}
	return r
}

func TestNew_InMemory(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion() error: %v", err)
	}
	if want := catalogMigrations[len(catalogMigrations)-1].version; version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}

	n, err := db.CountActiveCoolers(ctx)
	if err != nil || n != 0 {
		t.Errorf("CountActiveCoolers() = %d, %v; want 0", n, err)
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	got := dsn(&config.DatabaseConfig{Path: "/data/c.duckdb", Threads: 3, PreserveInsertionOrder: true})
	path, query, ok := strings.Cut(got, "?")
	if !ok || path != "/data/c.duckdb" {
		t.Fatalf("dsn() = %q, want path /data/c.duckdb with a query", got)
	}
	q, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error: %v", query, err)
	}
	want := map[string]string{
		"threads":                      "3",
		"max_memory":                   defaultMaxMemory,
		"preserve_insertion_order":     "true",
		"autoload_known_extensions":    "false",
		"autoinstall_known_extensions": "false",
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Errorf("%s = %q, want %q", k, q.Get(k), v)
		}
	}

	q, _ = url.ParseQuery(strings.SplitN(dsn(&config.DatabaseConfig{Path: memoryPath, MaxMemory: "64MB"}), "?", 2)[1])
	if q.Get("max_memory") != "64MB" || q.Get("threads") == "0" {
		t.Errorf("memory dsn query = %v", q)
	}
}

func TestCheckpoint_InMemoryNoop(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Checkpoint(testContext(t)); err != nil {
		t.Errorf("Checkpoint() on :memory: = %v, want nil", err)
	}
}

func TestNew_Reopen(t *testing.T) {
	path := t.TempDir() + "/catalog/coolers.duckdb"
	cfg := &config.DatabaseConfig{Path: path, MaxMemory: "256MB", Threads: 1}

	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := db.CreateCooler(context.Background(), &models.Cooler{Model: "DD-1", HeatExchangeArea: 10}); err != nil {
		t.Fatalf("CreateCooler() error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Migrations must not run twice and data must survive.
	db, err = New(cfg)
	if err != nil {
		t.Fatalf("New() reopen error: %v", err)
	}
	defer db.Close()

	n, err := db.CountActiveCoolers(context.Background())
	if err != nil || n != 1 {
		t.Errorf("CountActiveCoolers() after reopen = %d, %v; want 1", n, err)
	}
}

func TestSeedSampleData(t *testing.T) {
	db := setupTestDBWithConfig(t, &config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB", SeedSampleData: true})
	ctx := testContext(t)

	n, err := db.CountActiveCoolers(ctx)
	if err != nil {
		t.Fatalf("CountActiveCoolers() error: %v", err)
	}
	if n != int64(len(sampleUnits)) {
		t.Errorf("coolers = %d, want %d", n, len(sampleUnits))
	}

	records, err := db.GetCapacityRecords(ctx, "SC2", "R404A")
	if err != nil {
		t.Fatalf("GetCapacityRecords() error: %v", err)
	}
	if len(records) != len(sampleUnits) {
		t.Errorf("SC2/R404A records = %d, want %d", len(records), len(sampleUnits))
	}

	// A second seed is a no-op.
	seeded, err := db.SeedSampleData(ctx)
	if err != nil || seeded {
		t.Errorf("SeedSampleData() on populated catalog = %v, %v; want false, nil", seeded, err)
	}
}

func TestMigrate_BackfillsFanSpacing(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	labelled, err := db.CreateCooler(ctx, &models.Cooler{Model: "DL-20", HeatExchangeArea: 20, FinSpacing: "C04=4.5mm"})
	if err != nil {
		t.Fatalf("CreateCooler() error: %v", err)
	}
	plain, err := db.CreateCooler(ctx, &models.Cooler{Model: "DL-30", HeatExchangeArea: 30, FinSpacing: "6mm"})
	if err != nil {
		t.Fatalf("CreateCooler() error: %v", err)
	}

	// Pretend the backfill never ran on this file.
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = 2`); err != nil {
		t.Fatalf("reset migration: %v", err)
	}
	if err := db.migrate(); err != nil {
		t.Fatalf("migrate() error: %v", err)
	}

	got, err := db.GetCooler(ctx, labelled.ID)
	if err != nil {
		t.Fatalf("GetCooler() error: %v", err)
	}
	if got.FanSpacingNum == nil || *got.FanSpacingNum != 4.5 {
		t.Errorf("fan_spacing_num = %v, want 4.5", got.FanSpacingNum)
	}

	got, err = db.GetCooler(ctx, plain.ID)
	if err != nil {
		t.Fatalf("GetCooler() error: %v", err)
	}
	if got.FanSpacingNum != nil {
		t.Errorf("fan_spacing_num = %v for label without '=', want nil", *got.FanSpacingNum)
	}

	if v, err := db.SchemaVersion(ctx); err != nil || v != 2 {
		t.Errorf("SchemaVersion() = %d, %v; want 2", v, err)
	}
}
