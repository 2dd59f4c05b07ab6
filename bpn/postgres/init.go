// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package postgres contains the partner directory repository backed by a
// PostgreSQL database.
package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of the partner directory.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "bpn_mappings_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS bpn_mappings (
						bpn VARCHAR(254) PRIMARY KEY,
						url TEXT NOT NULL
					);`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS bpn_mappings`,
				},
			},
		},
	}
}
