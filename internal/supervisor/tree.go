// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer is one branch of the tree. Each layer is its own supervisor, so a
// restart loop in one layer does not count against the others.
type Layer int

const (
	// LayerData holds catalog maintenance (DuckDB checkpoints).
	LayerData Layer = iota
	// LayerMessaging holds catalog-changed consumers (cache invalidation).
	LayerMessaging
	// LayerAPI holds the HTTP server.
	LayerAPI

	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerData:
		return "data-layer"
	case LayerMessaging:
		return "messaging-layer"
	case LayerAPI:
		return "api-layer"
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// TreeConfig tunes suture's restart policy. Zero fields take the values
// from DefaultTreeConfig.
type TreeConfig struct {
	FailureThreshold float64       // failures tolerated before backoff
	FailureDecay     float64       // seconds for the failure count to halve
	FailureBackoff   time.Duration // pause once the threshold is crossed
	ShutdownTimeout  time.Duration // per-service stop deadline
}

// DefaultTreeConfig mirrors suture's defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) spec() suture.Spec {
	d := DefaultTreeConfig()
	pick := func(v, def float64) float64 {
		if v == 0 {
			return def
		}
		return v
	}
	pickDur := func(v, def time.Duration) time.Duration {
		if v == 0 {
			return def
		}
		return v
	}
	return suture.Spec{
		FailureThreshold: pick(c.FailureThreshold, d.FailureThreshold),
		FailureDecay:     pick(c.FailureDecay, d.FailureDecay),
		FailureBackoff:   pickDur(c.FailureBackoff, d.FailureBackoff),
		Timeout:          pickDur(c.ShutdownTimeout, d.ShutdownTimeout),
	}
}

// SupervisorTree supervises the long-running parts of the service:
//
//	coolerselect
//	├── data-layer       duckdb-checkpoint
//	├── messaging-layer  cache-invalidation
//	└── api-layer        http-server
//
// A crashed invalidation router leaves selection traffic running; cached
// results then live until their TTL.
type SupervisorTree struct {
	root     *suture.Supervisor
	layers   [layerCount]*suture.Supervisor
	services [layerCount][]string
	spec     suture.Spec
	logger   *slog.Logger
}

// NewSupervisorTree builds the root and its three layers. Supervisor events
// (restarts, backoff, timeouts) are logged through logger.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) *SupervisorTree {
	spec := config.spec()

	rootSpec := spec
	rootSpec.EventHook = (&sutureslog.Handler{Logger: logger}).MustHook()

	t := &SupervisorTree{
		root:   suture.New("coolerselect", rootSpec),
		spec:   spec,
		logger: logger,
	}
	for l := Layer(0); l < layerCount; l++ {
		// Layers pick up the root's event hook when added.
		t.layers[l] = suture.New(l.String(), spec)
		t.root.Add(t.layers[l])
	}
	return t
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// Add registers svc under layer. Services added after the tree is running
// start immediately.
func (t *SupervisorTree) Add(layer Layer, svc suture.Service) suture.ServiceToken {
	t.services[layer] = append(t.services[layer], fmt.Sprint(svc))
	return t.layers[layer].Add(svc)
}

// Services returns the registered service names by layer name.
func (t *SupervisorTree) Services() map[string][]string {
	out := make(map[string][]string, layerCount)
	for l := Layer(0); l < layerCount; l++ {
		out[l.String()] = append([]string(nil), t.services[l]...)
	}
	return out
}

// Serve runs the tree until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground starts the tree in a goroutine. The channel receives
// Serve's result once and is never closed.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// Run serves the tree until ctx is canceled, then logs every service that
// missed its stop deadline. Cancellation is not an error.
func (t *SupervisorTree) Run(ctx context.Context) error {
	err := t.Serve(ctx)

	if unstopped, rerr := t.UnstoppedServiceReport(); rerr == nil {
		for _, svc := range unstopped {
			t.logger.Warn("service did not stop in time",
				"service", svc.Name,
				"timeout", t.spec.Timeout)
		}
	}

	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// UnstoppedServiceReport lists services that missed the shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
