// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TopicCatalogChanged carries every catalog mutation.
const TopicCatalogChanged = "catalog.changed"

// Entity names the kind of catalog row that changed.
type Entity string

const (
	EntityCooler     Entity = "cooler"
	EntityCapacity   Entity = "capacity"
	EntityCorrection Entity = "correction"
)

// Action names what happened to the entity.
type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionImported Action = "imported"
)

// CatalogChanged is published after a catalog mutation commits. EntityID is
// zero for bulk imports, where Count holds the number of rows touched.
type CatalogChanged struct {
	EventID   string    `json:"event_id"`
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	EntityID  int64     `json:"entity_id,omitempty"`
	Count     int       `json:"count,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCatalogChanged builds an event with a fresh id.
func NewCatalogChanged(entity Entity, action Action, entityID int64) CatalogChanged {
	return CatalogChanged{
		EventID:   uuid.New().String(),
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// Validate checks required fields.
func (e *CatalogChanged) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("event_id is required")
	}
	switch e.Entity {
	case EntityCooler, EntityCapacity, EntityCorrection:
	default:
		return fmt.Errorf("unknown entity %q", e.Entity)
	}
	switch e.Action {
	case ActionCreated, ActionUpdated, ActionDeleted, ActionImported:
	default:
		return fmt.Errorf("unknown action %q", e.Action)
	}
	return nil
}

// Marshal encodes the event as JSON.
func (e *CatalogChanged) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalCatalogChanged decodes and validates an event payload.
func UnmarshalCatalogChanged(data []byte) (*CatalogChanged, error) {
	var e CatalogChanged
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode catalog event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog event: %w", err)
	}
	return &e, nil
}
