package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/models"
	"github.com/jackc/pgerrcode"
)

// syncKeyRepository is the PostgreSQL-backed implementation of
// [KeyRepository]. It owns the "sync_keys" table and the transactional
// seeding of a new group's entries.
type syncKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyRepository constructs a [KeyRepository] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	return &syncKeyRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists the minted sync key and its seed entries in one
// transaction. The seed may be empty (a group with no entries yet is valid).
//
// Seed rows go through the same conditional-upsert statement as uploads so
// the LWW invariant holds from the very first write.
func (r *syncKeyRepository) Create(ctx context.Context, key string, seed map[string]models.Entry) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "syncKeyRepository.Create").
			Msg("failed to begin transaction for sync key creation")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertSyncKey, key)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			// 32 random bytes colliding means the token source is broken,
			// not that the caller raced another generate.
			log.Error().
				Str("func", "syncKeyRepository.Create").
				Msg("minted sync key already exists")
		}
		log.Err(err).
			Str("func", "syncKeyRepository.Create").
			Msg("failed to insert sync key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrSyncKeyNotCreated
	}

	for name, entry := range seed {
		if _, err = tx.ExecContext(ctx, conditionalUpsertEntry, key, name, entry.Value, entry.UpdatedAt); err != nil {
			log.Err(err).
				Str("func", "syncKeyRepository.Create").
				Str("name", name).
				Msg("failed to insert seed entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "syncKeyRepository.Create").
			Msg("failed to commit sync key creation")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Exists reports whether the sync key is present in the registry.
func (r *syncKeyRepository) Exists(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.DB.QueryRowContext(ctx, syncKeyExists, key).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "syncKeyRepository.Exists").
			Msg("failed to check sync key existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
