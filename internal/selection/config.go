// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"fmt"
	"time"
)

// Config holds engine settings.
type Config struct {
	// Limit is the maximum number of units returned per selection.
	Limit int

	// CatalogTimeout bounds each catalog call. Zero disables the bound.
	CatalogTimeout time.Duration

	// DefaultRefrigerant applies when a request leaves the refrigerant empty.
	DefaultRefrigerant Refrigerant

	// DefaultSupplyMethod applies when a request leaves the supply method empty.
	DefaultSupplyMethod SupplyMethod
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		Limit:               5,
		CatalogTimeout:      5 * time.Second,
		DefaultRefrigerant:  R404A,
		DefaultSupplyMethod: DirectExpansion,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.CatalogTimeout < 0 {
		return fmt.Errorf("catalog timeout must not be negative, got %s", c.CatalogTimeout)
	}
	if _, err := ParseRefrigerant(string(c.DefaultRefrigerant)); err != nil {
		return fmt.Errorf("default refrigerant: %w", err)
	}
	if !c.DefaultSupplyMethod.Valid() {
		return fmt.Errorf("default supply method: %w",
			&UnknownValueError{Field: "supply_method", Value: string(c.DefaultSupplyMethod)})
	}
	return nil
}
