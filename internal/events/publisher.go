// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/coolerselect/internal/logging"
	"github.com/tomtom215/coolerselect/internal/metrics"
)

// Publisher sends catalog change events.
type Publisher struct {
	publisher message.Publisher
}

// NewPublisher wraps a watermill publisher.
func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{publisher: pub}
}

// Publish sends event on TopicCatalogChanged. The request id from ctx, if
// any, travels in the message metadata.
func (p *Publisher) Publish(ctx context.Context, event CatalogChanged) error {
	if err := event.Validate(); err != nil {
		return err
	}
	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("encode catalog event: %w", err)
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set("entity", string(event.Entity))
	msg.Metadata.Set("action", string(event.Action))
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		msg.Metadata.Set("request_id", requestID)
	}
	msg.SetContext(ctx)

	if err := p.publisher.Publish(TopicCatalogChanged, msg); err != nil {
		return fmt.Errorf("publish catalog event: %w", err)
	}
	metrics.CatalogEventsPublished.WithLabelValues(string(event.Entity)).Inc()
	return nil
}

// Notify publishes a change and logs, rather than returns, a failure. A
// mutation that already committed must not be reported as failed because
// the cache could not be told.
func (p *Publisher) Notify(ctx context.Context, entity Entity, action Action, entityID int64) {
	p.notify(ctx, NewCatalogChanged(entity, action, entityID))
}

// NotifyImport publishes a bulk import of count rows.
func (p *Publisher) NotifyImport(ctx context.Context, entity Entity, count int) {
	event := NewCatalogChanged(entity, ActionImported, 0)
	event.Count = count
	p.notify(ctx, event)
}

func (p *Publisher) notify(ctx context.Context, event CatalogChanged) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("entity", string(event.Entity)).
			Str("action", string(event.Action)).
			Msg("Failed to publish catalog change")
	}
}
