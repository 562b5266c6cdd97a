package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
)

// Storages aggregates the server-side repositories behind one constructor so
// the service layer receives them as a unit.
type Storages struct {
	KeyRepository   KeyRepository
	EntryRepository EntryRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Storages{
		KeyRepository:   NewKeyRepository(db, log),
		EntryRepository: NewEntryRepository(db, log),
	}, nil
}
