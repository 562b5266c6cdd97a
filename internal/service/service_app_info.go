package service

import (
	"context"

	"github.com/MKhiriev/go-sync-relay/internal/config"
)

type appInfoService struct {
	version string
}

// NewAppInfoService validates that a build version is configured and exposes
// it through [AppInfoService].
func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: cfg.Version}, nil
}

func (a *appInfoService) GetAppVersion(_ context.Context) string {
	return a.version
}
