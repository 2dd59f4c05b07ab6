// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package bpn resolves business partner numbers to dataspace connector
// endpoints.
package bpn

import (
	"context"

	"github.com/partlane/qnotify/pkg/errors"
)

// ErrNotFound indicates there is no mapping for the requested partner.
var ErrNotFound = errors.NewNotFoundError("no edc mapping for bpn")

// EdcMapping binds a business partner number to its connector endpoint.
type EdcMapping struct {
	Bpn string `json:"bpn" db:"bpn"`
	URL string `json:"url" db:"url"`
}

// Repository specifies the partner directory API.
type Repository interface {
	// Resolve returns the connector endpoint of the given partner.
	Resolve(ctx context.Context, bpn string) (EdcMapping, error)

	// ResolveAll returns the mappings of the given partners. Partners
	// without a mapping are skipped.
	ResolveAll(ctx context.Context, bpns []string) ([]EdcMapping, error)

	// Save persists a mapping, replacing any previous endpoint.
	Save(ctx context.Context, mapping EdcMapping) error
}
