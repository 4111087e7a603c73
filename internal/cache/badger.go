// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces selection results inside the Badger keyspace.
const keyPrefix = "selection:"

// Store is the persistent cache tier backed by BadgerDB. Entries expire via
// Badger's native TTL, so nothing needs sweeping.
type Store struct {
	db *badger.DB
}

// OpenStore opens a Badger store in dir. An empty dir keeps the store in
// memory, which is what tests and ephemeral deployments use.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Badger's own logger is noisy at info level

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the stored bytes for key. A missing or expired key yields
// (nil, false, nil).
func (s *Store) Get(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}
	return data, true, nil
}

// Set stores value under key for ttl.
func (s *Store) Set(key string, value []byte, ttl time.Duration) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keyPrefix+key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Purge removes every selection entry.
func (s *Store) Purge() error {
	if err := s.db.DropPrefix([]byte(keyPrefix)); err != nil {
		return fmt.Errorf("purge cache store: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
