// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

// Package catalog decorates the selection catalog with a circuit breaker and
// per-call metrics.
package catalog

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/logging"
	"github.com/tomtom215/coolerselect/internal/metrics"
	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// BreakerName labels the catalog breaker in logs and metrics.
const BreakerName = "catalog"

// ErrUnavailable is returned while the breaker rejects calls.
var ErrUnavailable = errors.New("catalog unavailable")

// BreakerCatalog wraps a selection.Catalog with a circuit breaker.
//
// While the store keeps failing, the breaker opens and calls fail fast with
// ErrUnavailable instead of queueing behind a dead database. The engine then
// reports them as infrastructure errors like any other catalog failure.
//
// The breaker uses real time for its interval and timeout. Tests drive it
// with short durations rather than a fake clock.
type BreakerCatalog struct {
	next selection.Catalog
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewBreakerCatalog wraps next using the breaker settings from cfg. The
// breaker trips once at least MinRequests calls have been made in the
// current interval and FailureRatio of them failed.
func NewBreakerCatalog(next selection.Catalog, cfg *config.BreakerConfig) *BreakerCatalog {
	b := &BreakerCatalog{next: next, name: BreakerName}
	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:          b.name,
		MaxRequests:   cfg.MaxRequests,
		Interval:      cfg.Interval,
		Timeout:       cfg.Timeout,
		ReadyToTrip:   tripAt(cfg.MinRequests, cfg.FailureRatio),
		IsSuccessful:  storeHealthy,
		OnStateChange: recordTransition,
	})
	metrics.CircuitBreakerState.WithLabelValues(b.name).Set(float64(gobreaker.StateClosed))
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return b
}

func tripAt(minRequests uint32, failureRatio float64) func(gobreaker.Counts) bool {
	return func(counts gobreaker.Counts) bool {
		if counts.Requests < minRequests {
			return false
		}
		ratio := float64(counts.TotalFailures) / float64(counts.Requests)
		if ratio < failureRatio {
			return false
		}
		logging.Warn().
			Uint32("requests", counts.Requests).
			Uint32("failures", counts.TotalFailures).
			Float64("failure_ratio", ratio).
			Msg("Catalog breaker tripping")
		return true
	}
}

// storeHealthy treats a caller that gave up as a success; only the store
// failing should count against it.
func storeHealthy(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// recordTransition exports the new state. The gauge value is the gobreaker
// state: 0 closed, 1 half-open, 2 open.
func recordTransition(name string, from, to gobreaker.State) {
	logging.Info().
		Str("breaker", name).
		Stringer("from", from).
		Stringer("to", to).
		Msg("Catalog breaker state changed")

	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
	metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
	if to == gobreaker.StateClosed {
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	}
}

// State is "closed", "half-open" or "open".
func (b *BreakerCatalog) State() string {
	return b.cb.State().String()
}

// guard runs fn through b's breaker. A rejected call fails with
// ErrUnavailable (joined with the gobreaker reason).
func guard[T any](b *BreakerCatalog, op string, fn func() (T, error)) (T, error) {
	var zero T

	start := time.Now()
	out, err := b.cb.Execute(func() (any, error) { return fn() })
	metrics.RecordCatalogQuery(op, time.Since(start), err)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Warn().Err(err).Str("operation", op).Msg("Catalog call rejected by open breaker")
		return zero, errors.Join(ErrUnavailable, err)
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	v, _ := out.(T)
	return v, nil
}

func (b *BreakerCatalog) FindCorrectionEntry(ctx context.Context, evaporatingTemp, deltaT float64) (*models.CorrectionEntry, error) {
	return guard(b, selection.OpFindCorrectionEntry, func() (*models.CorrectionEntry, error) {
		return b.next.FindCorrectionEntry(ctx, evaporatingTemp, deltaT)
	})
}

func (b *BreakerCatalog) GetCapacityRecords(ctx context.Context, workingStatus, refrigerant string) ([]models.CapacityRecord, error) {
	return guard(b, selection.OpGetCapacityRecords, func() ([]models.CapacityRecord, error) {
		return b.next.GetCapacityRecords(ctx, workingStatus, refrigerant)
	})
}

func (b *BreakerCatalog) GetUnitsByIDs(ctx context.Context, ids []int64) ([]models.Cooler, error) {
	return guard(b, selection.OpGetUnitsByIDs, func() ([]models.Cooler, error) {
		return b.next.GetUnitsByIDs(ctx, ids)
	})
}
