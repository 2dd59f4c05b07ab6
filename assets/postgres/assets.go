// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/partlane/qnotify/assets"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
	"github.com/partlane/qnotify/pkg/postgres"
)

var _ assets.Repository = (*assetRepo)(nil)

type assetRepo struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of the asset
// catalog repository.
func NewRepository(db postgres.Database) assets.Repository {
	return &assetRepo{
		db: db,
	}
}

func (repo *assetRepo) RetrieveByIDs(ctx context.Context, ids []string) ([]assets.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := `SELECT id, name, manufacturer_id, semantic_model_id FROM assets WHERE id = ANY(:ids) ORDER BY id;`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]any{"ids": pq.Array(ids)})
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	found := make(map[string]assets.Asset, len(ids))
	for rows.Next() {
		var dba dbAsset
		if err := rows.StructScan(&dba); err != nil {
			return nil, errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
		found[dba.ID] = toAsset(dba)
	}

	// Every requested part must exist, a notification about an unknown
	// part is a client error.
	out := make([]assets.Asset, 0, len(ids))
	for _, id := range ids {
		asset, ok := found[id]
		if !ok {
			return nil, errors.Wrap(repoerr.ErrNotFound, fmt.Errorf("asset %s", id))
		}
		out = append(out, asset)
	}

	return out, nil
}

func (repo *assetRepo) Save(ctx context.Context, as []assets.Asset) error {
	q := `INSERT INTO assets (id, name, manufacturer_id, semantic_model_id)
	VALUES (:id, :name, :manufacturer_id, :semantic_model_id)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, manufacturer_id = EXCLUDED.manufacturer_id, semantic_model_id = EXCLUDED.semantic_model_id;`

	for _, asset := range as {
		if _, err := repo.db.NamedExecContext(ctx, q, toDBAsset(asset)); err != nil {
			return postgres.HandleError(repoerr.ErrCreateEntity, err)
		}
	}

	return nil
}

type dbAsset struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	ManufacturerID  sql.NullString `db:"manufacturer_id"`
	SemanticModelID sql.NullString `db:"semantic_model_id"`
}

func toDBAsset(a assets.Asset) dbAsset {
	var manufacturerID sql.NullString
	if a.ManufacturerID != "" {
		manufacturerID = sql.NullString{String: a.ManufacturerID, Valid: true}
	}
	var semanticModelID sql.NullString
	if a.SemanticModelID != "" {
		semanticModelID = sql.NullString{String: a.SemanticModelID, Valid: true}
	}

	return dbAsset{
		ID:              a.ID,
		Name:            a.Name,
		ManufacturerID:  manufacturerID,
		SemanticModelID: semanticModelID,
	}
}

func toAsset(dba dbAsset) assets.Asset {
	a := assets.Asset{
		ID:   dba.ID,
		Name: dba.Name,
	}
	if dba.ManufacturerID.Valid {
		a.ManufacturerID = dba.ManufacturerID.String
	}
	if dba.SemanticModelID.Valid {
		a.SemanticModelID = dba.SemanticModelID.String
	}

	return a
}
