// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package postgres contains the notification repository implementation
// backed by a PostgreSQL database.
package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of the notification service.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "notifications_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS notifications (
						id                 VARCHAR(26) PRIMARY KEY,
						title              VARCHAR(254) NOT NULL,
						description        TEXT,
						bpn                VARCHAR(254) NOT NULL,
						type               SMALLINT NOT NULL CHECK (type >= 0),
						side               SMALLINT NOT NULL CHECK (side >= 0),
						severity           SMALLINT NOT NULL CHECK (severity >= 0),
						status             SMALLINT NOT NULL CHECK (status >= 0),
						target_date        TIMESTAMPTZ,
						affected_part_ids  TEXT[],
						created_at         TIMESTAMPTZ NOT NULL,
						updated_at         TIMESTAMPTZ
					);`,
					`CREATE TABLE IF NOT EXISTS notification_messages (
						id                    VARCHAR(36) PRIMARY KEY,
						notification_id       VARCHAR(26) NOT NULL,
						sender_bpn            VARCHAR(254) NOT NULL,
						receiver_bpn          VARCHAR(254) NOT NULL,
						description           TEXT,
						status                SMALLINT NOT NULL CHECK (status >= 0),
						severity              SMALLINT NOT NULL CHECK (severity >= 0),
						affected_part_ids     TEXT[],
						edc_notification_id   VARCHAR(36) NOT NULL,
						contract_agreement_id VARCHAR(254),
						edc_url               TEXT,
						target_date           TIMESTAMPTZ,
						created_at            TIMESTAMPTZ NOT NULL,
						seq                   BIGSERIAL,
						FOREIGN KEY (notification_id) REFERENCES notifications(id) ON DELETE CASCADE
					);`,
					`CREATE INDEX IF NOT EXISTS idx_notification_messages_notification_id
						ON notification_messages(notification_id);`,
					`CREATE INDEX IF NOT EXISTS idx_notification_messages_edc_notification_id
						ON notification_messages(edc_notification_id);`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS notification_messages`,
					`DROP TABLE IF EXISTS notifications`,
				},
			},
		},
	}
}
