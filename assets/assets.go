// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package assets provides lookup of the part records a notification concerns.
package assets

import "context"

// Asset is a part record synchronized from the asset registry. Notifications
// reference assets read-only and never own them.
type Asset struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	ManufacturerID  string `json:"manufacturer_id"`
	SemanticModelID string `json:"semantic_model_id,omitempty"`
}

// Repository specifies the asset lookup API.
type Repository interface {
	// RetrieveByIDs returns the asset records for the given ids. Every
	// requested id must exist, an unknown id is an error.
	RetrieveByIDs(ctx context.Context, ids []string) ([]Asset, error)

	// Save upserts a batch of asset records.
	Save(ctx context.Context, as []Asset) error
}
