package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/store"
)

// Services aggregates the server-side services behind one constructor so the
// transport layer receives them as a unit.
type Services struct {
	SyncService
	AppInfoService
}

// NewServices wires every server-side service to the storage layer and the
// application configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("app info service init error: %w", err)
	}

	return &Services{
		SyncService:    NewSyncService(storages, logger),
		AppInfoService: appInfoService,
	}, nil
}
