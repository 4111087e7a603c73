// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/metrics"
	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// Tier names used in metrics and logs.
const (
	TierMemory = "memory"
	TierBadger = "badger"
)

// cachedResult is the persisted form of a selection. Calculation is not part
// of the API payload, so it needs its own field here.
type cachedResult struct {
	Items       []models.Cooler       `json:"items"`
	Total       int                   `json:"total"`
	Calculation selection.Calculation `json:"calculation"`
}

// requestKey is the normalized request hashed into a cache key. Limit is part
// of the key because the Badger tier outlives configuration changes.
type requestKey struct {
	EvaporatingTemp    float64  `json:"evaporating_temp"`
	RepoTemp           float64  `json:"repo_temp"`
	RequiredCoolingCap float64  `json:"required_cooling_cap"`
	Refrigerant        string   `json:"refrigerant"`
	SupplyMethod       string   `json:"supply_method"`
	FinDistance        *float64 `json:"fin_distance,omitempty"`
	Limit              int      `json:"limit"`
}

// SelectionCache holds selection results in two tiers: a bounded memory
// cache in front of a Badger store.
//
// Every Purge starts a new generation. A result computed from catalog reads
// that began in an earlier generation is never stored, so a selection racing
// a catalog write cannot repopulate the cache after its invalidation.
type SelectionCache struct {
	memory *Memory[*selection.Result]
	store  *Store
	ttl    time.Duration
	logger zerolog.Logger

	// mu is held shared by writers and exclusively by Purge; gen only
	// changes under the exclusive lock.
	mu  sync.RWMutex
	gen uint64
}

// NewSelectionCache opens both tiers.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSelectionCache(cfg *config.CacheConfig, logger zerolog.Logger) (*SelectionCache, error) {
	if cfg == nil {
		return nil, errors.New("cache config is required")
	}
	store, err := OpenStore(cfg.Dir)
	if err != nil {
		return nil, err
	}
	return &SelectionCache{
		memory: NewMemory[*selection.Result](cfg.TTL, cfg.MaxEntries),
		store:  store,
		ttl:    cfg.TTL,
		logger: logger.With().Str("component", "cache").Logger(),
	}, nil
}

// Key derives the cache key for req, applying the engine defaults the same
// way a selection does. ok is false when the request cannot be normalized;
// such requests fail validation and are never cached.
func Key(req selection.Request, cfg selection.Config) (key string, ok bool) {
	refrigerant := cfg.DefaultRefrigerant
	if req.Refrigerant != "" {
		r, err := selection.ParseRefrigerant(req.Refrigerant)
		if err != nil {
			return "", false
		}
		refrigerant = r
	}
	method := cfg.DefaultSupplyMethod
	if req.SupplyMethod != "" {
		m, err := selection.ParseSupplyMethod(req.SupplyMethod)
		if err != nil {
			return "", false
		}
		method = m
	}

	data, err := json.Marshal(requestKey{
		EvaporatingTemp:    req.EvaporatingTemp,
		RepoTemp:           req.RepoTemp,
		RequiredCoolingCap: req.RequiredCoolingCap,
		Refrigerant:        string(refrigerant),
		SupplyMethod:       string(method),
		FinDistance:        req.FinDistance,
		Limit:              cfg.Limit,
	})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), true
}

// Generation identifies the current catalog epoch. Capture it before reading
// the catalog and hand it to SetAt.
func (c *SelectionCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// Get looks key up in the memory tier, then in Badger. A Badger hit is
// promoted to memory unless a purge ran meanwhile. The returned result is a
// private copy.
func (c *SelectionCache) Get(key string) (*selection.Result, string, bool) {
	gen := c.Generation()

	if res, ok := c.memory.Get(key); ok {
		metrics.RecordCacheLookup(TierMemory)
		return copyResult(res), TierMemory, true
	}

	data, found, err := c.store.Get(key)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache store read failed")
	}
	if !found {
		metrics.RecordCacheLookup("")
		return nil, "", false
	}

	var payload cachedResult
	if err := json.Unmarshal(data, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("discarding undecodable cache entry")
		metrics.RecordCacheLookup("")
		return nil, "", false
	}
	res := &selection.Result{
		Items:       payload.Items,
		Total:       payload.Total,
		Calculation: payload.Calculation,
	}
	if res.Items == nil {
		res.Items = []models.Cooler{}
	}
	c.mu.RLock()
	if c.gen == gen {
		c.memory.Set(key, res)
	}
	c.mu.RUnlock()
	metrics.RecordCacheLookup(TierBadger)
	return copyResult(res), TierBadger, true
}

// Set stores res in both tiers for the current generation.
func (c *SelectionCache) Set(key string, res *selection.Result) {
	c.SetAt(key, c.Generation(), res)
}

// SetAt stores res in both tiers if no purge has run since gen was read.
// It reports whether res was stored. Store failures are logged, not
// returned: the caller already has its answer.
func (c *SelectionCache) SetAt(key string, gen uint64, res *selection.Result) bool {
	if res == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.gen != gen {
		c.logger.Debug().Uint64("generation", gen).Uint64("current", c.gen).Msg("dropping result computed before a purge")
		return false
	}

	stored := copyResult(res)
	c.memory.Set(key, stored)

	data, err := json.Marshal(cachedResult{
		Items:       stored.Items,
		Total:       stored.Total,
		Calculation: stored.Calculation,
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache entry encode failed")
		return true
	}
	if err := c.store.Set(key, data, c.ttl); err != nil {
		c.logger.Warn().Err(err).Msg("cache store write failed")
	}
	return true
}

// Purge starts a new generation and empties both tiers.
func (c *SelectionCache) Purge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	dropped := c.memory.Purge()
	if err := c.store.Purge(); err != nil {
		return err
	}
	metrics.CachePurges.Inc()
	c.logger.Debug().Int("memory_entries", dropped).Msg("selection cache purged")
	return nil
}

// Stats returns memory tier statistics.
func (c *SelectionCache) Stats() Stats {
	return c.memory.Stats()
}

// Close stops the memory tier and closes the Badger store.
func (c *SelectionCache) Close() error {
	c.memory.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("close cache store: %w", err)
	}
	return nil
}

func copyResult(res *selection.Result) *selection.Result {
	items := make([]models.Cooler, len(res.Items))
	copy(items, res.Items)
	return &selection.Result{
		Items:       items,
		Total:       res.Total,
		Calculation: res.Calculation,
	}
}
