package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/models"
)

// localEntryRepository is the SQLite-backed implementation of
// [LocalEntryRepository]. One row per entry name; a locally deleted entry
// keeps its row as a tombstone (NULL value) so the deletion can still be
// uploaded with its timestamp.
type localEntryRepository struct {
	*DB
	logger *logger.Logger

	mu       sync.RWMutex
	onChange func(name string)

	// now is swappable in tests to control write timestamps.
	now func() int64
}

func NewLocalEntryRepository(db *DB, logger *logger.Logger) LocalEntryRepository {
	return &localEntryRepository{
		DB:     db,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// Get returns the live value for name, or nil when the entry is absent or
// tombstoned.
func (l *localEntryRepository) Get(ctx context.Context, name string) (*string, error) {
	log := logger.FromContext(ctx)

	var value sql.NullString
	err := l.DB.QueryRowContext(ctx, getLocalEntry, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.Get").
			Str("name", name).
			Msg("failed to read local entry")
		return nil, fmt.Errorf("failed to read local entry %s: %w", name, err)
	}

	if !value.Valid {
		return nil, nil
	}
	return &value.String, nil
}

// Set writes a local value stamped with the current local time and fires the
// change callback.
func (l *localEntryRepository) Set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, upsertLocalEntry, name, value, l.now()); err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.Set").
			Str("name", name).
			Msg("failed to write local entry")
		return fmt.Errorf("failed to write local entry %s: %w", name, err)
	}

	l.notify(name)
	return nil
}

// Remove tombstones the entry with a fresh local timestamp, so the deletion
// propagates on the next reconciliation cycle, and fires the change callback.
func (l *localEntryRepository) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, upsertLocalEntry, name, nil, l.now()); err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.Remove").
			Str("name", name).
			Msg("failed to remove local entry")
		return fmt.Errorf("failed to remove local entry %s: %w", name, err)
	}

	l.notify(name)
	return nil
}

// ListKeys returns the names of all live (non-tombstoned) entries.
func (l *localEntryRepository) ListKeys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listLiveLocalKeys)
	if err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.ListKeys").
			Msg("failed to list local keys")
		return nil, fmt.Errorf("failed to list local keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localEntryRepository.ListKeys").
				Msg("failed to scan local key row")
			return nil, fmt.Errorf("failed to scan local key row: %w", scanErr)
		}
		keys = append(keys, name)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localEntryRepository.ListKeys").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating local key rows: %w", rowsErr)
	}

	return keys, nil
}

// States returns every stored row with its write timestamp, tombstones
// included.
func (l *localEntryRepository) States(ctx context.Context) (map[string]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllLocalStates)
	if err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.States").
			Msg("failed to read local states")
		return nil, fmt.Errorf("failed to read local states: %w", err)
	}
	defer rows.Close()

	states := make(map[string]models.Entry, 16)
	for rows.Next() {
		var name string
		var value sql.NullString
		var updatedAt int64

		if scanErr := rows.Scan(&name, &value, &updatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localEntryRepository.States").
				Msg("failed to scan local state row")
			return nil, fmt.Errorf("failed to scan local state row: %w", scanErr)
		}

		entry := models.Entry{UpdatedAt: updatedAt}
		if value.Valid {
			entry.Value = &value.String
		}
		states[name] = entry
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localEntryRepository.States").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating local state rows: %w", rowsErr)
	}

	return states, nil
}

// ApplyRemote writes a server-sourced entry with the server's own timestamp.
// It deliberately bypasses the change callback so applying a diff never loops
// back into the daemon, and it is idempotent: re-applying the same entry
// leaves the row unchanged.
func (l *localEntryRepository) ApplyRemote(ctx context.Context, name string, value *string, updatedAt int64) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, upsertLocalEntry, name, value, updatedAt); err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.ApplyRemote").
			Str("name", name).
			Msg("failed to apply remote entry")
		return fmt.Errorf("failed to apply remote entry %s: %w", name, err)
	}

	return nil
}

func (l *localEntryRepository) SetOnChange(fn func(name string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

func (l *localEntryRepository) notify(name string) {
	l.mu.RLock()
	fn := l.onChange
	l.mu.RUnlock()

	if fn != nil {
		fn(name)
	}
}
