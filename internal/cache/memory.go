// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package cache

import (
	"sync"
	"time"
)

// DefaultMaxEntries bounds the memory tier when no limit is configured.
const DefaultMaxEntries = 10000

// Stats counts memory tier activity since start.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
}

// HitRate is Hits as a percentage of lookups, 0 before the first lookup.
func (s Stats) HitRate() float64 {
	lookups := s.Hits + s.Misses
	if lookups == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(lookups)
}

type item[V any] struct {
	value   V
	expires time.Time
}

// Memory is a size-bounded TTL map safe for concurrent use. Expired items
// are dropped lazily on lookup and by a background sweep; at capacity the
// item nearest expiry makes room for a new key.
type Memory[V any] struct {
	mu    sync.Mutex
	items map[string]item[V]
	ttl   time.Duration
	limit int
	stats Stats
	now   func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// NewMemory starts the sweep goroutine; Close stops it.
func NewMemory[V any](ttl time.Duration, limit int) *Memory[V] {
	if limit <= 0 {
		limit = DefaultMaxEntries
	}
	m := &Memory[V]{
		items: make(map[string]item[V]),
		ttl:   ttl,
		limit: limit,
		now:   time.Now,
		done:  make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[key]
	if ok && m.now().After(it.expires) {
		delete(m.items, key)
		ok = false
	}
	if !ok {
		m.stats.Misses++
		var zero V
		return zero, false
	}
	m.stats.Hits++
	return it.value, true
}

// Set stores value for the default TTL.
func (m *Memory[V]) Set(key string, value V) {
	m.SetFor(key, value, m.ttl)
}

func (m *Memory[V]) SetFor(key string, value V, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists && len(m.items) >= m.limit {
		m.evictLocked()
	}
	m.items[key] = item[V]{value: value, expires: m.now().Add(ttl)}
}

func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}

// Purge drops everything and reports how many items were held.
func (m *Memory[V]) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.items)
	clear(m.items)
	return n
}

// Len counts held items, including expired ones not yet swept.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *Memory[V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats
	s.Entries = len(m.items)
	return s
}

// Close stops the sweep. It may be called more than once.
func (m *Memory[V]) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}

func (m *Memory[V]) evictLocked() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for key, it := range m.items {
		if !found || it.expires.Before(soonest) {
			victim, soonest, found = key, it.expires, true
		}
	}
	if found {
		delete(m.items, victim)
		m.stats.Evictions++
	}
}

func (m *Memory[V]) sweepLoop() {
	every := m.ttl
	if every <= 0 || every > time.Minute {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Memory[V]) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, it := range m.items {
		if now.After(it.expires) {
			delete(m.items, key)
		}
	}
}
