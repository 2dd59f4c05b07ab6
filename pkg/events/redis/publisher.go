// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/partlane/qnotify/pkg/events"
)

// Redis stream is trimmed to this length approximately.
const maxLen = 1e6

type record struct {
	stream string
	values map[string]any
}

type pubEventStore struct {
	client      *redis.Client
	mu          sync.Mutex
	unpublished []record
}

var _ events.Publisher = (*pubEventStore)(nil)

// NewPublisher returns a redis-streams event publisher. Events that cannot
// be delivered are buffered and retried on the given interval.
func NewPublisher(ctx context.Context, url string, checkInterval time.Duration) (events.Publisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	es := &pubEventStore{
		client: redis.NewClient(opts),
	}

	go es.flushUnpublished(ctx, checkInterval)

	return es, nil
}

func (es *pubEventStore) Publish(ctx context.Context, stream string, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}
	values["occurred_at"] = time.Now().UnixNano()

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	rec := record{
		stream: stream,
		values: map[string]any{"payload": data},
	}

	if err := es.client.XAdd(ctx, &redis.XAddArgs{
		Stream: rec.stream,
		MaxLen: maxLen,
		Approx: true,
		Values: rec.values,
	}).Err(); err != nil {
		es.buffer(rec)
		return err
	}

	return nil
}

func (es *pubEventStore) buffer(rec record) {
	es.mu.Lock()
	defer es.mu.Unlock()

	if len(es.unpublished) >= events.MaxUnpublishedEvents {
		es.unpublished = es.unpublished[1:]
	}
	es.unpublished = append(es.unpublished, rec)
}

func (es *pubEventStore) flushUnpublished(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			es.mu.Lock()
			pending := es.unpublished
			es.unpublished = nil
			es.mu.Unlock()

			for i, rec := range pending {
				if err := es.client.XAdd(ctx, &redis.XAddArgs{
					Stream: rec.stream,
					MaxLen: maxLen,
					Approx: true,
					Values: rec.values,
				}).Err(); err != nil {
					es.mu.Lock()
					es.unpublished = append(pending[i:], es.unpublished...)
					es.mu.Unlock()
					break
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (es *pubEventStore) Close() error {
	return es.client.Close()
}
