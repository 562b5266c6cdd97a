package store

import (
	"github.com/MKhiriev/go-sync-relay/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
