// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// DefaultBufferSize is the per-subscriber output channel buffer.
const DefaultBufferSize = 64

// Bus is the in-process message bus. It is both the publisher and the
// subscriber side of the gochannel transport.
type Bus struct {
	channel *gochannel.GoChannel
	logger  watermill.LoggerAdapter
}

// NewBus creates an in-process bus. A nil logger discards watermill output.
func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: DefaultBufferSize,
	}, logger)
	return &Bus{channel: ch, logger: logger}
}

// Publisher returns the publishing side of the bus.
func (b *Bus) Publisher() message.Publisher {
	return b.channel
}

// Subscriber returns the subscribing side of the bus.
func (b *Bus) Subscriber() message.Subscriber {
	return b.channel
}

// Logger returns the watermill logger the bus was built with.
func (b *Bus) Logger() watermill.LoggerAdapter {
	return b.logger
}

// Close closes the bus and all subscriptions.
func (b *Bus) Close() error {
	return b.channel.Close()
}
