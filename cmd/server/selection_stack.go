// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package main

import (
	"fmt"

	"github.com/tomtom215/coolerselect/internal/cache"
	"github.com/tomtom215/coolerselect/internal/catalog"
	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/logging"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// selectionStack is the engine with its optional decorators:
//
//	CachedSelector -> Engine -> BreakerCatalog -> store
type selectionStack struct {
	selector cache.Selector
	cache    *cache.SelectionCache
	breaker  *catalog.BreakerCatalog
}

// newSelectionStack builds the stack from cfg. The breaker and the cache are
// each skipped when disabled.
func newSelectionStack(cfg *config.Config, store selection.Catalog) (*selectionStack, error) {
	engineCfg, err := engineConfig(&cfg.Selection)
	if err != nil {
		return nil, err
	}

	stack := &selectionStack{}

	var cat selection.Catalog = store
	if cfg.Breaker.Enabled {
		stack.breaker = catalog.NewBreakerCatalog(store, &cfg.Breaker)
		cat = stack.breaker
	}

	engine, err := selection.NewEngine(engineCfg, cat, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	stack.selector = engine

	if cfg.Cache.Enabled {
		c, err := cache.NewSelectionCache(&cfg.Cache, logging.Logger())
		if err != nil {
			return nil, fmt.Errorf("create selection cache: %w", err)
		}
		stack.cache = c
		stack.selector = cache.NewCachedSelector(engine, c)
	}

	return stack, nil
}

// Close releases the cache tiers.
func (s *selectionStack) Close() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing selection cache")
	}
}

// engineConfig converts the koanf section into engine settings, resolving
// refrigerant and supply method aliases.
func engineConfig(sc *config.SelectionConfig) (*selection.Config, error) {
	refrigerant, err := selection.ParseRefrigerant(sc.DefaultRefrigerant)
	if err != nil {
		return nil, fmt.Errorf("SELECTION_DEFAULT_REFRIGERANT: %w", err)
	}
	method, err := selection.ParseSupplyMethod(sc.DefaultSupplyMethod)
	if err != nil {
		return nil, fmt.Errorf("SELECTION_DEFAULT_SUPPLY_METHOD: %w", err)
	}
	return &selection.Config{
		Limit:               sc.Limit,
		CatalogTimeout:      sc.CatalogTimeout,
		DefaultRefrigerant:  refrigerant,
		DefaultSupplyMethod: method,
	}, nil
}
