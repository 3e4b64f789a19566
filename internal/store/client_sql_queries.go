// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createHistoryTable = `
		CREATE TABLE IF NOT EXISTS history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id    TEXT    NOT NULL,
			destination TEXT    NOT NULL,
			file_name   TEXT    NOT NULL,
			mime_type   TEXT    NOT NULL,
			field       TEXT    NOT NULL,
			size_bytes  INTEGER NOT NULL DEFAULT 0,
			status      TEXT    NOT NULL,
			ok          BOOLEAN NOT NULL,
			reason      TEXT    NOT NULL DEFAULT '',
			uploaded_at TIMESTAMP NOT NULL
		);`

	createHistoryBatchIndex = `
		CREATE INDEX IF NOT EXISTS idx_history_batch_id ON history (batch_id);`

	saveSingleHistoryEntry = `
		INSERT INTO history (
			batch_id,
			destination,
			file_name,
			mime_type,
			field,
			size_bytes,
			status,
			ok,
			reason,
			uploaded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getRecentHistory = `
		SELECT
			id,
			batch_id,
			destination,
			file_name,
			mime_type,
			field,
			size_bytes,
			status,
			ok,
			reason,
			uploaded_at
		FROM history
		ORDER BY id DESC
		LIMIT $1;`
)
