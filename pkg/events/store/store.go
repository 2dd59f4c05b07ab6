// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package store selects the event store backend.
package store

import (
	"context"

	"github.com/partlane/qnotify/pkg/events"
	"github.com/partlane/qnotify/pkg/events/redis"
)

// NewPublisher returns an event publisher backed by redis streams.
func NewPublisher(ctx context.Context, url string) (events.Publisher, error) {
	pb, err := redis.NewPublisher(ctx, url, events.UnpublishedEventsCheckInterval)
	if err != nil {
		return nil, err
	}

	return pb, nil
}
