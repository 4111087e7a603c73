// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/coolerselect/internal/models"
)

// Catalog operation names carried by InfrastructureError.Op.
const (
	OpFindCorrectionEntry = "find_correction_entry"
	OpGetCapacityRecords  = "get_capacity_records"
	OpGetUnitsByIDs       = "get_units_by_ids"
)

// Catalog is the read side of the cooler catalog. Implementations return
// active (non-deleted) rows only. Buckets and refrigerants are passed as
// their string codes so the store does not depend on this package.
type Catalog interface {
	// FindCorrectionEntry returns the entry whose evaporating temperature and
	// delta T both equal the arguments exactly, or nil, nil when there is none.
	FindCorrectionEntry(ctx context.Context, evaporatingTemp, deltaT float64) (*models.CorrectionEntry, error)

	// GetCapacityRecords returns every capacity record for the working status and refrigerant.
	GetCapacityRecords(ctx context.Context, workingStatus, refrigerant string) ([]models.CapacityRecord, error)

	// GetUnitsByIDs returns the units with the given IDs in any order.
	GetUnitsByIDs(ctx context.Context, ids []int64) ([]models.Cooler, error)
}

// Engine runs selections against a Catalog. It holds no per-request state
// and is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	logger  zerolog.Logger
}

// NewEngine creates a selection engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	return &Engine{
		config:  cfg,
		catalog: catalog,
		logger:  logger.With().Str("component", "selection").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// ResolveQuant returns the correction coefficient for an operating point and
// whether it came from a measured catalog entry. The supply method is
// checked before the catalog is consulted.
func (e *Engine) ResolveQuant(ctx context.Context, evaporatingTemp, deltaT float64, bucket Bucket, method SupplyMethod) (float64, bool, error) {
	if !method.Valid() {
		return 0, false, &UnknownValueError{Field: "supply_method", Value: string(method)}
	}

	var entry *models.CorrectionEntry
	err := e.withTimeout(ctx, OpFindCorrectionEntry, func(ctx context.Context) error {
		var err error
		entry, err = e.catalog.FindCorrectionEntry(ctx, evaporatingTemp, deltaT)
		return err
	})
	if err != nil {
		return 0, false, err
	}
	if entry != nil {
		return entry.Quant, true, nil
	}

	q, err := FallbackQuant(bucket, method)
	if err != nil {
		return 0, false, err
	}
	return q, false, nil
}

// Select returns the units whose rated capacity is nearest to the request
// after correction, nearest first.
func (e *Engine) Select(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	deltaT := req.DeltaT()
	bucket, err := Classify(req.EvaporatingTemp)
	if err != nil {
		return nil, err
	}
	refrigerant, method, err := e.normalize(req)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(req.RequiredCoolingCap) || req.RequiredCoolingCap <= 0 {
		return nil, &DomainRangeError{Name: "required cooling capacity", Value: req.RequiredCoolingCap}
	}
	factor, err := RefrigerantFactor(refrigerant, method)
	if err != nil {
		return nil, err
	}

	// The coefficient lookup and the candidate fetch are independent reads.
	var (
		quant      float64
		measured   bool
		candidates []models.CapacityRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quant, measured, err = e.ResolveQuant(gctx, req.EvaporatingTemp, deltaT, bucket, method)
		return err
	})
	g.Go(func() error {
		return e.withTimeout(gctx, OpGetCapacityRecords, func(ctx context.Context) error {
			var err error
			candidates, err = e.catalog.GetCapacityRecords(ctx, string(bucket), string(refrigerant))
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	target, err := ComputeTarget(req.RequiredCoolingCap, quant, factor)
	if err != nil {
		return nil, err
	}

	pool := make([]Candidate, len(candidates))
	for i, c := range candidates {
		pool[i] = Candidate{UnitID: c.CoolerID, Capacity: c.Capacity}
	}
	topIDs := Rank(pool, target, e.config.Limit)

	items := []models.Cooler{}
	if len(topIDs) > 0 {
		var units []models.Cooler
		err := e.withTimeout(ctx, OpGetUnitsByIDs, func(ctx context.Context) error {
			var err error
			units, err = e.catalog.GetUnitsByIDs(ctx, topIDs)
			return err
		})
		if err != nil {
			return nil, err
		}
		items = orderByIDs(units, topIDs)
	}

	source := QuantFallback
	if measured {
		source = QuantMeasured
	}
	result := &Result{
		Items: items,
		Total: len(items),
		Calculation: Calculation{
			Bucket:            bucket,
			DeltaT:            deltaT,
			Quant:             quant,
			QuantSource:       source,
			RefrigerantFactor: factor,
			TargetCapacity:    target,
			Refrigerant:       refrigerant,
			SupplyMethod:      method,
			Candidates:        len(candidates),
		},
	}

	e.logger.Debug().
		Str("bucket", string(bucket)).
		Float64("target", target).
		Str("quant_source", string(source)).
		Int("candidates", len(candidates)).
		Int("returned", result.Total).
		Dur("elapsed", time.Since(start)).
		Msg("selection complete")

	return result, nil
}

// normalize applies the configured defaults and parses the enumerated fields.
func (e *Engine) normalize(req Request) (Refrigerant, SupplyMethod, error) {
	refrigerant := e.config.DefaultRefrigerant
	if req.Refrigerant != "" {
		r, err := ParseRefrigerant(req.Refrigerant)
		if err != nil {
			return "", "", err
		}
		refrigerant = r
	}

	method := e.config.DefaultSupplyMethod
	if req.SupplyMethod != "" {
		m, err := ParseSupplyMethod(req.SupplyMethod)
		if err != nil {
			return "", "", err
		}
		method = m
	}
	return refrigerant, method, nil
}

// withTimeout runs fn under the catalog timeout and wraps any failure as an
// InfrastructureError for op.
func (e *Engine) withTimeout(ctx context.Context, op string, fn func(context.Context) error) error {
	if e.config.CatalogTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.CatalogTimeout)
		defer cancel()
	}
	if err := fn(ctx); err != nil {
		return &InfrastructureError{Op: op, Err: err}
	}
	return nil
}

// orderByIDs returns units in the order of ids. IDs with no matching unit
// are skipped, and a unit returned twice is kept once.
func orderByIDs(units []models.Cooler, ids []int64) []models.Cooler {
	byID := make(map[int64]models.Cooler, len(units))
	for i := range units {
		byID[units[i].ID] = units[i]
	}
	ordered := make([]models.Cooler, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
			delete(byID, id)
		}
	}
	return ordered
}
