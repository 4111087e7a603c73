// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Purger empties a cache. *cache.SelectionCache satisfies it.
type Purger interface {
	Purge(ctx context.Context) error
}

// InvalidationConfig holds the retry and shutdown settings of the
// invalidation router.
type InvalidationConfig struct {
	CloseTimeout         time.Duration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
}

// DefaultInvalidationConfig returns production defaults.
func DefaultInvalidationConfig() InvalidationConfig {
	return InvalidationConfig{
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     2 * time.Second,
	}
}

const invalidationHandlerName = "selection-cache-invalidation"

// InvalidationService consumes catalog change events and purges the
// selection cache. It implements suture.Service; each Serve call builds a
// fresh watermill router because a router cannot be run twice.
type InvalidationService struct {
	subscriber message.Subscriber
	purger     Purger
	logger     watermill.LoggerAdapter
	config     InvalidationConfig
}

// NewInvalidationService creates the service. A nil cfg uses defaults.
func NewInvalidationService(
	subscriber message.Subscriber,
	purger Purger,
	logger watermill.LoggerAdapter,
	cfg *InvalidationConfig,
) (*InvalidationService, error) {
	if subscriber == nil {
		return nil, errors.New("subscriber is required")
	}
	if purger == nil {
		return nil, errors.New("purger is required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if cfg == nil {
		defaults := DefaultInvalidationConfig()
		cfg = &defaults
	}
	return &InvalidationService{
		subscriber: subscriber,
		purger:     purger,
		logger:     logger.With(watermill.LogFields{"component": "cache-invalidation"}),
		config:     *cfg,
	}, nil
}

// Serve runs the router until ctx is canceled.
func (s *InvalidationService) Serve(ctx context.Context) error {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: s.config.CloseTimeout,
	}, s.logger)
	if err != nil {
		return fmt.Errorf("create invalidation router: %w", err)
	}

	retry := middleware.Retry{
		MaxRetries:      s.config.RetryMaxRetries,
		InitialInterval: s.config.RetryInitialInterval,
		MaxInterval:     s.config.RetryMaxInterval,
		Multiplier:      2.0,
		Logger:          s.logger,
	}

	// Outermost first: failures that survive the retries are dropped, since
	// the gochannel transport redelivers a nacked message immediately.
	router.AddMiddleware(s.dropAfterRetries, middleware.Recoverer, retry.Middleware)

	router.AddConsumerHandler(invalidationHandlerName, TopicCatalogChanged, s.subscriber, s.Handle)

	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("invalidation router: %w", err)
	}
	return ctx.Err()
}

// Handle purges the cache for one catalog change. Undecodable payloads are
// logged and acknowledged.
func (s *InvalidationService) Handle(msg *message.Message) error {
	event, err := UnmarshalCatalogChanged(msg.Payload)
	if err != nil {
		s.logger.Error("Dropping malformed catalog event", err, watermill.LogFields{"message_uuid": msg.UUID})
		return nil
	}

	if err := s.purger.Purge(msg.Context()); err != nil {
		return fmt.Errorf("purge selection cache: %w", err)
	}

	s.logger.Debug("Selection cache purged", watermill.LogFields{
		"entity":    string(event.Entity),
		"action":    string(event.Action),
		"entity_id": event.EntityID,
	})
	return nil
}

func (s *InvalidationService) dropAfterRetries(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		out, err := h(msg)
		if err != nil {
			s.logger.Error("Catalog event handling failed after retries", err, watermill.LogFields{
				"message_uuid": msg.UUID,
			})
			return nil, nil
		}
		return out, nil
	}
}

// String implements fmt.Stringer for suture logs.
func (s *InvalidationService) String() string {
	return invalidationHandlerName
}
