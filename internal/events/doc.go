// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

// Package events carries catalog change notifications over an in-process
// Watermill bus.
//
// Every committed catalog mutation (cooler, capacity or correction create,
// update, delete, and bulk imports) publishes a CatalogChanged event on
// TopicCatalogChanged. InvalidationService consumes the topic and purges the
// selection cache, so a selection never answers from a catalog state that
// no longer exists.
//
//	bus := events.NewBus(watermill.NewSlogLogger(logging.NewSlogLogger()))
//	pub := events.NewPublisher(bus.Publisher())
//	svc, _ := events.NewInvalidationService(bus.Subscriber(), selectionCache, bus.Logger(), nil)
//	tree.Add(supervisor.LayerMessaging, svc)
//
//	pub.Notify(ctx, events.EntityCooler, events.ActionDeleted, id)
//
// The transport is Watermill's gochannel pub/sub. Messages published while
// no subscriber is attached are dropped, which is harmless here: a cache
// that is not yet being invalidated is not yet serving either.
package events
