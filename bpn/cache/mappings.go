// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package cache provides a Redis read-through cache for the partner
// directory.
package cache

import (
	"context"
	"time"

	"github.com/partlane/qnotify/bpn"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyBpn indicates a lookup with an empty partner number.
var ErrEmptyBpn = errors.New("bpn is empty")

const keyPrefix = "bpn_mapping:"

var _ bpn.Repository = (*mappingsCache)(nil)

type mappingsCache struct {
	client   *redis.Client
	repo     bpn.Repository
	duration time.Duration
}

// NewMappingsCache wraps the partner directory with a Redis read-through
// cache. Resolved endpoints are kept for the configured duration.
func NewMappingsCache(client *redis.Client, repo bpn.Repository, duration time.Duration) bpn.Repository {
	return &mappingsCache{
		client:   client,
		repo:     repo,
		duration: duration,
	}
}

func (mc *mappingsCache) Resolve(ctx context.Context, partner string) (bpn.EdcMapping, error) {
	if partner == "" {
		return bpn.EdcMapping{}, errors.Wrap(repoerr.ErrViewEntity, ErrEmptyBpn)
	}

	url, err := mc.client.Get(ctx, keyPrefix+partner).Result()
	if err == nil {
		return bpn.EdcMapping{Bpn: partner, URL: url}, nil
	}

	mapping, err := mc.repo.Resolve(ctx, partner)
	if err != nil {
		return bpn.EdcMapping{}, err
	}

	// A failed cache write only costs the next lookup a database trip.
	_ = mc.client.Set(ctx, keyPrefix+partner, mapping.URL, mc.duration).Err()

	return mapping, nil
}

func (mc *mappingsCache) ResolveAll(ctx context.Context, partners []string) ([]bpn.EdcMapping, error) {
	mappings := make([]bpn.EdcMapping, 0, len(partners))
	var misses []string
	for _, partner := range partners {
		url, err := mc.client.Get(ctx, keyPrefix+partner).Result()
		if err != nil {
			misses = append(misses, partner)
			continue
		}
		mappings = append(mappings, bpn.EdcMapping{Bpn: partner, URL: url})
	}

	if len(misses) == 0 {
		return mappings, nil
	}

	resolved, err := mc.repo.ResolveAll(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, mapping := range resolved {
		_ = mc.client.Set(ctx, keyPrefix+mapping.Bpn, mapping.URL, mc.duration).Err()
		mappings = append(mappings, mapping)
	}

	return mappings, nil
}

func (mc *mappingsCache) Save(ctx context.Context, mapping bpn.EdcMapping) error {
	if err := mc.repo.Save(ctx, mapping); err != nil {
		return err
	}

	if err := mc.client.Set(ctx, keyPrefix+mapping.Bpn, mapping.URL, mc.duration).Err(); err != nil {
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return nil
}
