package store

import (
	"context"

	"github.com/MKhiriev/go-sync-relay/models"
)

// KeyRepository owns the sync_keys table: minted capability tokens and their
// seed entries.
type KeyRepository interface {
	// Create persists a freshly minted sync key together with its seed
	// entries as a single transaction, so seed rows are never visible
	// without the key existing.
	Create(ctx context.Context, key string, seed map[string]models.Entry) error

	// Exists reports whether the sync key is known. Every other endpoint
	// uses it as a guard before touching the group's entries.
	Exists(ctx context.Context, key string) (bool, error)
}

// EntryRepository owns the (sync_key, name) → (value, updated_at) relation.
type EntryRepository interface {
	// GetVersionMap returns every entry name of the group with its stored
	// timestamp, tombstones included.
	GetVersionMap(ctx context.Context, key string) (models.VersionMap, error)

	// GetEntries returns the requested entries. Names with no stored row
	// yield the synthetic {Value: nil, UpdatedAt: 0} so callers always get
	// a definite answer for every requested name.
	GetEntries(ctx context.Context, key string, names []string) (map[string]models.Entry, error)

	// ConditionalUpsert writes (value, updated_at) for (key, name) only if
	// no row exists or the stored timestamp is strictly less than the
	// incoming one. The comparison and the write are one atomic statement;
	// a stale write is a silent no-op.
	ConditionalUpsert(ctx context.Context, key, name string, entry models.Entry) error

	// UpsertBatch applies every change through the same conditional write
	// inside one transaction, so a batch is durably visible all-or-nothing
	// even though individual writes may lose the timestamp race.
	UpsertBatch(ctx context.Context, key string, changes map[string]models.Entry) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
