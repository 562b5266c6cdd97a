// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalSchema = `
		CREATE TABLE IF NOT EXISTS entries (
			name       TEXT PRIMARY KEY,
			value      TEXT NULL,
			updated_at INTEGER NOT NULL
		);`

	getLocalEntry = `
		SELECT value
		FROM entries
		WHERE name = ?;`

	upsertLocalEntry = `
		INSERT INTO entries (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	listLiveLocalKeys = `
		SELECT name
		FROM entries
		WHERE value IS NOT NULL
		ORDER BY name;`

	getAllLocalStates = `
		SELECT name, value, updated_at
		FROM entries;`
)
