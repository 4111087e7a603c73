// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coolerselect/internal/models"
)

// mockCatalog implements Catalog for testing. It is safe for concurrent reads.
type mockCatalog struct {
	corrections []models.CorrectionEntry
	capacities  []models.CapacityRecord
	units       []models.Cooler

	correctionErr error
	capacityErr   error
	unitsErr      error

	// block makes every call wait for context cancellation.
	block bool

	// reverseUnits returns units in reverse ID order.
	reverseUnits bool

	correctionCalls atomic.Int32
	capacityCalls   atomic.Int32
	unitsCalls      atomic.Int32
	lastWorking     atomic.Value
	lastRefrigerant atomic.Value
}

func (m *mockCatalog) FindCorrectionEntry(ctx context.Context, evaporatingTemp, deltaT float64) (*models.CorrectionEntry, error) {
	m.correctionCalls.Add(1)
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.correctionErr != nil {
		return nil, m.correctionErr
	}
	for i := range m.corrections {
		if m.corrections[i].EvaporatingTemp == evaporatingTemp && m.corrections[i].DeltaT == deltaT {
			entry := m.corrections[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *mockCatalog) GetCapacityRecords(ctx context.Context, workingStatus, refrigerant string) ([]models.CapacityRecord, error) {
	m.capacityCalls.Add(1)
	m.lastWorking.Store(workingStatus)
	m.lastRefrigerant.Store(refrigerant)
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.capacityErr != nil {
		return nil, m.capacityErr
	}
	var out []models.CapacityRecord
	for _, r := range m.capacities {
		if r.WorkingStatus == workingStatus && r.Refrigerant == refrigerant {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockCatalog) GetUnitsByIDs(ctx context.Context, ids []int64) ([]models.Cooler, error) {
	m.unitsCalls.Add(1)
	if m.unitsErr != nil {
		return nil, m.unitsErr
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Cooler
	for _, u := range m.units {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	if m.reverseUnits {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// sampleCatalog has seven units rated under SC2/R404A plus noise rows.
func sampleCatalog() *mockCatalog {
	m := &mockCatalog{}
	caps := []float64{100, 120, 140, 150, 160, 180, 200}
	for i, c := range caps {
		id := int64(i + 1)
		m.units = append(m.units, models.Cooler{ID: id, Model: "DD-" + string(rune('A'+i)), HeatExchangeArea: c / 2})
		m.capacities = append(m.capacities,
			models.CapacityRecord{ID: id, CoolerID: id, WorkingStatus: "SC2", Refrigerant: "R404A", Capacity: c},
			models.CapacityRecord{ID: 100 + id, CoolerID: id, WorkingStatus: "SC1", Refrigerant: "R404A", Capacity: c * 1.5},
			models.CapacityRecord{ID: 200 + id, CoolerID: id, WorkingStatus: "SC2", Refrigerant: "R22", Capacity: c * 0.9},
		)
	}
	return m
}

func newTestEngine(t *testing.T, catalog Catalog, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, catalog, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func unitIDs(units []models.Cooler) []int64 {
	ids := make([]int64, len(units))
	for i := range units {
		ids[i] = units[i].ID
	}
	return ids
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, &mockCatalog{}, zerolog.Nop()); err != nil {
		t.Errorf("NewEngine(nil cfg) error: %v", err)
	}
	if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil catalog) expected error")
	}

	bad := []*Config{
		{Limit: 0, DefaultRefrigerant: R404A, DefaultSupplyMethod: DirectExpansion},
		{Limit: 5, CatalogTimeout: -time.Second, DefaultRefrigerant: R404A, DefaultSupplyMethod: DirectExpansion},
		{Limit: 5, DefaultRefrigerant: "R134A", DefaultSupplyMethod: DirectExpansion},
		{Limit: 5, DefaultRefrigerant: R404A, DefaultSupplyMethod: "gravity"},
	}
	for i, cfg := range bad {
		if _, err := NewEngine(cfg, &mockCatalog{}, zerolog.Nop()); err == nil {
			t.Errorf("config %d: expected validation error", i)
		}
	}
}

func TestEngine_Select_EndToEnd(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	catalog.reverseUnits = true
	e := newTestEngine(t, catalog, nil)

	res, err := e.Select(context.Background(), Request{
		EvaporatingTemp:    -10,
		RepoTemp:           -5,
		RequiredCoolingCap: 150,
		Refrigerant:        "R404A",
		SupplyMethod:       "pump-supplied",
	})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}

	calc := res.Calculation
	if calc.Bucket != BucketSC2 {
		t.Errorf("bucket = %s, want SC2", calc.Bucket)
	}
	if calc.DeltaT != 5 {
		t.Errorf("delta T = %v, want 5", calc.DeltaT)
	}
	if calc.Quant != 1.005 || calc.QuantSource != QuantFallback {
		t.Errorf("quant = %v (%s), want 1.005 (fallback)", calc.Quant, calc.QuantSource)
	}
	if calc.RefrigerantFactor != 1.005 {
		t.Errorf("refrigerant factor = %v, want 1.005", calc.RefrigerantFactor)
	}
	if math.Abs(calc.TargetCapacity-148.51) > 0.01 {
		t.Errorf("target = %v, want ~148.51", calc.TargetCapacity)
	}
	if calc.Candidates != 7 {
		t.Errorf("candidates = %d, want 7", calc.Candidates)
	}

	// Distances to 148.51: 150→1.49, 140→8.51, 160→11.49, 120→28.51, 180→31.49.
	want := []int64{4, 3, 5, 2, 6}
	got := unitIDs(res.Items)
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items = %v, want %v", got, want)
		}
	}
	if res.Total != len(res.Items) {
		t.Errorf("total = %d, want %d", res.Total, len(res.Items))
	}

	if ws, _ := catalog.lastWorking.Load().(string); ws != "SC2" {
		t.Errorf("capacity lookup working status = %q, want SC2", ws)
	}
	if r, _ := catalog.lastRefrigerant.Load().(string); r != "R404A" {
		t.Errorf("capacity lookup refrigerant = %q, want R404A", r)
	}
}

func TestEngine_Select_Defaults(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	e := newTestEngine(t, catalog, nil)

	res, err := e.Select(context.Background(), Request{
		EvaporatingTemp:    -10,
		RepoTemp:           -2,
		RequiredCoolingCap: 100,
	})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if res.Calculation.Refrigerant != R404A {
		t.Errorf("refrigerant = %s, want R404A", res.Calculation.Refrigerant)
	}
	if res.Calculation.SupplyMethod != DirectExpansion {
		t.Errorf("supply method = %s, want direct-expansion", res.Calculation.SupplyMethod)
	}
	if res.Calculation.Quant != 1.000 {
		t.Errorf("quant = %v, want 1.000", res.Calculation.Quant)
	}
}

func TestEngine_ResolveQuant_MeasuredEntryWins(t *testing.T) {
	t.Parallel()

	catalog := &mockCatalog{
		corrections: []models.CorrectionEntry{{ID: 1, EvaporatingTemp: -10, DeltaT: 5, Quant: 0.912}},
	}
	e := newTestEngine(t, catalog, nil)

	q, measured, err := e.ResolveQuant(context.Background(), -10, 5, BucketSC2, PumpSupplied)
	if err != nil {
		t.Fatalf("ResolveQuant() error: %v", err)
	}
	if q != 0.912 || !measured {
		t.Errorf("ResolveQuant() = %v, %v; want 0.912, true", q, measured)
	}

	// Near miss on delta T uses the fallback table.
	q, measured, err = e.ResolveQuant(context.Background(), -10, 5.0000001, BucketSC2, PumpSupplied)
	if err != nil {
		t.Fatalf("ResolveQuant() error: %v", err)
	}
	if q != 1.005 || measured {
		t.Errorf("ResolveQuant(near miss) = %v, %v; want 1.005, false", q, measured)
	}
}

func TestEngine_ResolveQuant_InvalidMethodSkipsCatalog(t *testing.T) {
	t.Parallel()

	catalog := &mockCatalog{}
	e := newTestEngine(t, catalog, nil)

	_, _, err := e.ResolveQuant(context.Background(), -10, 5, BucketSC2, "flooded")
	var unknown *UnknownValueError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownValueError", err)
	}
	if n := catalog.correctionCalls.Load(); n != 0 {
		t.Errorf("catalog called %d times, want 0", n)
	}
}

func TestEngine_Select_MeasuredQuantFlowsIntoTarget(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	catalog.corrections = []models.CorrectionEntry{{EvaporatingTemp: -10, DeltaT: 5, Quant: 0.5}}
	e := newTestEngine(t, catalog, nil)

	res, err := e.Select(context.Background(), Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 100})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if res.Calculation.QuantSource != QuantMeasured {
		t.Errorf("quant source = %s, want measured", res.Calculation.QuantSource)
	}
	if res.Calculation.TargetCapacity != 200 {
		t.Errorf("target = %v, want 200", res.Calculation.TargetCapacity)
	}
	if len(res.Items) == 0 || res.Items[0].ID != 7 {
		t.Errorf("first item = %v, want unit 7 (200)", unitIDs(res.Items))
	}
}

func TestEngine_Select_ZeroMeasuredQuant(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	catalog.corrections = []models.CorrectionEntry{{EvaporatingTemp: -10, DeltaT: 5, Quant: 0}}
	e := newTestEngine(t, catalog, nil)

	_, err := e.Select(context.Background(), Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 100})
	var domainErr *DomainRangeError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error = %v, want *DomainRangeError", err)
	}
	if catalog.unitsCalls.Load() != 0 {
		t.Error("units fetched after domain error")
	}
}

func TestEngine_Select_ClientErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   Request
		check func(error) bool
	}{
		{
			name: "above range",
			req:  Request{EvaporatingTemp: 10.0001, RepoTemp: 20, RequiredCoolingCap: 10},
			check: func(err error) bool {
				var e *RangeError
				return errors.As(err, &e)
			},
		},
		{
			name: "unknown refrigerant",
			req:  Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 10, Refrigerant: "R134A"},
			check: func(err error) bool {
				var e *UnknownValueError
				return errors.As(err, &e) && e.Field == "refrigerant"
			},
		},
		{
			name: "unknown supply method",
			req:  Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 10, SupplyMethod: "gravity"},
			check: func(err error) bool {
				var e *UnknownValueError
				return errors.As(err, &e) && e.Field == "supply_method"
			},
		},
		{
			name: "non-positive capacity",
			req:  Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 0},
			check: func(err error) bool {
				var e *DomainRangeError
				return errors.As(err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			catalog := sampleCatalog()
			e := newTestEngine(t, catalog, nil)

			_, err := e.Select(context.Background(), tt.req)
			if !tt.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !IsClientError(err) {
				t.Errorf("IsClientError(%v) = false", err)
			}
			if n := catalog.capacityCalls.Load() + catalog.correctionCalls.Load(); n != 0 {
				t.Errorf("catalog called %d times, want 0", n)
			}
		})
	}
}

func TestEngine_Select_EmptyCandidates(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	e := newTestEngine(t, catalog, nil)

	// No SC4 records exist.
	res, err := e.Select(context.Background(), Request{EvaporatingTemp: -30, RepoTemp: -20, RequiredCoolingCap: 50})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 || res.Total != 0 {
		t.Errorf("result = %+v, want empty non-nil items and zero total", res)
	}
	if catalog.unitsCalls.Load() != 0 {
		t.Error("units fetched for empty ranking")
	}
}

func TestEngine_Select_MissingUnitsAreSkipped(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	// Unit 4 was deleted after its capacity record was read.
	catalog.units = append(catalog.units[:3:3], catalog.units[4:]...)
	e := newTestEngine(t, catalog, nil)

	res, err := e.Select(context.Background(), Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 150, SupplyMethod: "pump"})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if res.Total != 4 || len(res.Items) != 4 {
		t.Errorf("total = %d, items = %v; want 4", res.Total, unitIDs(res.Items))
	}
	for _, u := range res.Items {
		if u.ID == 4 {
			t.Error("missing unit 4 appeared in result")
		}
	}
}

func TestEngine_Select_InfrastructureErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	tests := []struct {
		name   string
		mutate func(*mockCatalog)
		wantOp string
	}{
		{"correction lookup", func(m *mockCatalog) { m.correctionErr = boom }, OpFindCorrectionEntry},
		{"capacity lookup", func(m *mockCatalog) { m.capacityErr = boom }, OpGetCapacityRecords},
		{"unit fetch", func(m *mockCatalog) { m.unitsErr = boom }, OpGetUnitsByIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			catalog := sampleCatalog()
			tt.mutate(catalog)
			e := newTestEngine(t, catalog, nil)

			res, err := e.Select(context.Background(), Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 150})
			if res != nil {
				t.Errorf("result = %+v, want nil on failure", res)
			}
			var infra *InfrastructureError
			if !errors.As(err, &infra) {
				t.Fatalf("error = %v, want *InfrastructureError", err)
			}
			if infra.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", infra.Op, tt.wantOp)
			}
			if !errors.Is(err, boom) {
				t.Error("cause not preserved")
			}
			if IsClientError(err) {
				t.Error("infrastructure error reported as client error")
			}
		})
	}
}

func TestEngine_Select_CatalogTimeout(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	catalog.block = true
	cfg := DefaultConfig()
	cfg.CatalogTimeout = 20 * time.Millisecond
	e := newTestEngine(t, catalog, cfg)

	start := time.Now()
	_, err := e.Select(context.Background(), Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 150})
	var infra *InfrastructureError
	if !errors.As(err, &infra) {
		t.Fatalf("error = %v, want *InfrastructureError", err)
	}
	if !infra.Timeout() {
		t.Errorf("Timeout() = false for %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Select took %s, timeout not applied", elapsed)
	}
}

func TestEngine_Select_ConcurrentIdenticalRequests(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sampleCatalog(), nil)
	req := Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 150, SupplyMethod: "pump-supplied"}

	want, err := e.Select(context.Background(), req)
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	wantIDs := unitIDs(want.Items)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.Select(context.Background(), req)
			if err != nil {
				errs <- err.Error()
				return
			}
			got := unitIDs(res.Items)
			if len(got) != len(wantIDs) {
				errs <- "length mismatch"
				return
			}
			for j := range got {
				if got[j] != wantIDs[j] {
					errs <- "order mismatch"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestEngine_Select_LimitFromConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limit = 2
	e := newTestEngine(t, sampleCatalog(), cfg)

	res, err := e.Select(context.Background(), Request{EvaporatingTemp: -10, RepoTemp: -5, RequiredCoolingCap: 150})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("total = %d, want 2", res.Total)
	}
}
