// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package postgres contains the asset catalog repository backed by a
// PostgreSQL database.
package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of the asset catalog.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "assets_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS assets (
						id                VARCHAR(254) PRIMARY KEY,
						name              VARCHAR(254) NOT NULL,
						manufacturer_id   VARCHAR(254),
						semantic_model_id VARCHAR(254)
					);`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS assets`,
				},
			},
		},
	}
}
