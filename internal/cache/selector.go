// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package cache

import (
	"context"

	"github.com/tomtom215/coolerselect/internal/logging"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// Selector runs selections. *selection.Engine satisfies it.
type Selector interface {
	Select(ctx context.Context, req selection.Request) (*selection.Result, error)
	Config() selection.Config
}

// CachedSelector answers repeated requests from a SelectionCache and
// forwards everything else to the wrapped Selector. Only successful
// selections are cached, and only when the catalog was not invalidated
// while they ran.
type CachedSelector struct {
	next  Selector
	cache *SelectionCache
}

// NewCachedSelector wraps next with cache.
func NewCachedSelector(next Selector, cache *SelectionCache) *CachedSelector {
	return &CachedSelector{next: next, cache: cache}
}

// Select implements Selector.
func (s *CachedSelector) Select(ctx context.Context, req selection.Request) (*selection.Result, error) {
	key, ok := Key(req, s.next.Config())
	if !ok {
		return s.next.Select(ctx, req)
	}
	if res, tier, hit := s.cache.Get(key); hit {
		logging.Ctx(ctx).Debug().Str("cache_tier", tier).Msg("Selection served from cache")
		return res, nil
	}

	gen := s.cache.Generation()
	res, err := s.next.Select(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.SetAt(key, gen, res)
	return res, nil
}

// Config implements Selector.
func (s *CachedSelector) Config() selection.Config {
	return s.next.Config()
}
