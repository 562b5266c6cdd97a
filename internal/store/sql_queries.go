// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	insertSyncKey = `INSERT INTO sync_keys (key) VALUES ($1);`

	syncKeyExists = `SELECT EXISTS (SELECT 1 FROM sync_keys WHERE key = $1);`

	getVersionMap = `SELECT name, updated_at
		FROM entries
		WHERE sync_key = $1;`

	// The comparison and the write form one atomic statement: the DO UPDATE
	// branch fires only when the stored timestamp is strictly older, so a
	// stale write affects zero rows instead of erroring. Equal timestamps
	// never overwrite (strict <, not <=).
	conditionalUpsertEntry = `
		INSERT INTO entries (sync_key, name, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sync_key, name) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at
		WHERE entries.updated_at < EXCLUDED.updated_at;`
)

// buildGetEntriesQuery builds the SELECT for an explicit set of entry names.
// squirrel renders the IN-clause with positional placeholders so the name
// list can be any length.
func buildGetEntriesQuery(key string, names []string) (string, []any, error) {
	return sq.Select("name", "value", "updated_at").
		From("entries").
		Where(sq.Eq{"sync_key": key}).
		Where(sq.Eq{"name": names}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
