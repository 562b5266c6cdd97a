package service

import (
	"github.com/MKhiriev/go-sync-relay/internal/adapter"
	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/store"
)

// ClientServices aggregates the client-side services behind one constructor.
type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

// NewClientServices wires the reconciliation service and its ticker job to the
// local store and the server transport.
func NewClientServices(storages *store.ClientStorages, server adapter.SyncClient, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	logger.Info().Msg("creating new client services...")

	syncService := NewClientSyncService(storages.EntryRepository, server, cfg, logger)

	return &ClientServices{
		SyncService: syncService,
		SyncJob:     NewClientSyncJob(syncService, cfg, logger),
	}
}
