package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/models"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. It executes all versioned-entry operations directly
// against the "entries" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (sync key is deliberately never logged in full).
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// GetVersionMap returns the authoritative name → updated_at map for the
// group, tombstones included. An unknown key yields an empty map; callers
// guard with [KeyRepository.Exists] first.
func (r *entryRepository) GetVersionMap(ctx context.Context, key string) (models.VersionMap, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getVersionMap, key)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetVersionMap").
			Msg("failed to execute version map query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	version := make(models.VersionMap)

	for rows.Next() {
		var name string
		var updatedAt int64

		if scanErr := rows.Scan(&name, &updatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.GetVersionMap").
				Msg("failed to scan version map row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		version[name] = updatedAt
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.GetVersionMap").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return version, nil
}

// GetEntries returns the requested entries by name. Names with no stored row
// are present in the result as the synthetic {Value: nil, UpdatedAt: 0}
// ("never seen, effectively deleted") instead of being omitted.
func (r *entryRepository) GetEntries(ctx context.Context, key string, names []string) (map[string]models.Entry, error) {
	log := logger.FromContext(ctx)

	result := make(map[string]models.Entry, len(names))
	for _, name := range names {
		result[name] = models.Entry{Value: nil, UpdatedAt: 0}
	}

	if len(names) == 0 {
		return result, nil
	}

	query, args, err := buildGetEntriesQuery(key, names)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetEntries").
			Int("names count", len(names)).
			Msg("failed to build entries query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetEntries").
			Int("names count", len(names)).
			Msg("failed to execute entries query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value sql.NullString
		var updatedAt int64

		if scanErr := rows.Scan(&name, &value, &updatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.GetEntries").
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entry := models.Entry{UpdatedAt: updatedAt}
		if value.Valid {
			entry.Value = &value.String
		}
		result[name] = entry
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.GetEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}

// ConditionalUpsert applies a single LWW write. The strict timestamp
// comparison lives in the SQL statement itself, so concurrent writers for the
// same (key, name) are serialized by the database at row granularity and a
// losing write simply affects zero rows.
func (r *entryRepository) ConditionalUpsert(ctx context.Context, key, name string, entry models.Entry) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, conditionalUpsertEntry, key, name, entry.Value, entry.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "entryRepository.ConditionalUpsert").
			Str("name", name).
			Msg("failed to execute conditional upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpsertBatch applies all changes of one upload inside a single transaction.
// Individual writes may be no-ops (lost timestamp races); the transaction
// only guarantees the batch becomes durable as a unit.
func (r *entryRepository) UpsertBatch(ctx context.Context, key string, changes map[string]models.Entry) error {
	log := logger.FromContext(ctx)

	if len(changes) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.UpsertBatch").
			Msg("failed to begin transaction for upsert batch")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for name, entry := range changes {
		if _, err = tx.ExecContext(ctx, conditionalUpsertEntry, key, name, entry.Value, entry.UpdatedAt); err != nil {
			log.Err(err).
				Str("func", "entryRepository.UpsertBatch").
				Str("name", name).
				Msg("failed to upsert entry in batch")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "entryRepository.UpsertBatch").
			Msg("failed to commit upsert batch")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
