// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"

	"github.com/lib/pq"
	"github.com/partlane/qnotify/bpn"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
	"github.com/partlane/qnotify/pkg/postgres"
)

var _ bpn.Repository = (*mappingRepo)(nil)

type mappingRepo struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of the partner
// directory repository.
func NewRepository(db postgres.Database) bpn.Repository {
	return &mappingRepo{
		db: db,
	}
}

func (repo *mappingRepo) Resolve(ctx context.Context, partner string) (bpn.EdcMapping, error) {
	q := `SELECT bpn, url FROM bpn_mappings WHERE bpn = :bpn;`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]any{"bpn": partner})
	if err != nil {
		return bpn.EdcMapping{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return bpn.EdcMapping{}, errors.Wrap(bpn.ErrNotFound, repoerr.ErrNotFound)
	}

	var mapping bpn.EdcMapping
	if err := rows.StructScan(&mapping); err != nil {
		return bpn.EdcMapping{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
	}

	return mapping, nil
}

func (repo *mappingRepo) ResolveAll(ctx context.Context, partners []string) ([]bpn.EdcMapping, error) {
	if len(partners) == 0 {
		return nil, nil
	}

	q := `SELECT bpn, url FROM bpn_mappings WHERE bpn = ANY(:bpns) ORDER BY bpn;`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]any{"bpns": pq.Array(partners)})
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var mappings []bpn.EdcMapping
	for rows.Next() {
		var mapping bpn.EdcMapping
		if err := rows.StructScan(&mapping); err != nil {
			return nil, errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
		mappings = append(mappings, mapping)
	}

	return mappings, nil
}

func (repo *mappingRepo) Save(ctx context.Context, mapping bpn.EdcMapping) error {
	q := `INSERT INTO bpn_mappings (bpn, url) VALUES (:bpn, :url)
	ON CONFLICT (bpn) DO UPDATE SET url = EXCLUDED.url;`

	if _, err := repo.db.NamedExecContext(ctx, q, mapping); err != nil {
		return postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	return nil
}
