package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalEntryRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// EntryRepository is the SQLite-backed device-local key/value store the
	// reconciliation daemon reads from and writes to.
	EntryRepository LocalEntryRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.Path,
//     creating the database file if it does not yet exist.
//  2. Bootstraps the local schema.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [LocalEntryRepository].
//
// Returns an error if the database connection cannot be established or if
// the schema cannot be created.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		EntryRepository: NewLocalEntryRepository(db, logger),
	}, nil
}
