// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package events provides the contracts used to publish service
// lifecycle events.
package events

import (
	"context"
	"time"
)

const (
	// UnpublishedEventsCheckInterval is how often the publisher retries
	// events buffered while the event store was unreachable.
	UnpublishedEventsCheckInterval = 1 * time.Minute

	// MaxUnpublishedEvents is the capacity of the unpublished events buffer.
	MaxUnpublishedEvents = 1000
)

// Event is an abstraction of the event entity.
type Event interface {
	// Encode encodes event to map.
	Encode() (map[string]any, error)
}

// Publisher specifies an event publishing API.
type Publisher interface {
	// Publish publishes event to the stream.
	Publish(ctx context.Context, stream string, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}

