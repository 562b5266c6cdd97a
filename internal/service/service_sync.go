package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/store"
	"github.com/MKhiriev/go-sync-relay/internal/utils"
	"github.com/MKhiriev/go-sync-relay/models"
)

type syncService struct {
	keys    store.KeyRepository
	entries store.EntryRepository
	logger  *logger.Logger

	// now is swappable in tests to control seed timestamps.
	now func() int64
}

// NewSyncService wires the server-side sync operations to the storage layer.
func NewSyncService(storages *store.Storages, logger *logger.Logger) SyncService {
	return &syncService{
		keys:    storages.KeyRepository,
		entries: storages.EntryRepository,
		logger:  logger,
		now:     func() int64 { return time.Now().UnixMilli() },
	}
}

// Generate implements [SyncService]. The minted key and its seed entries are
// persisted in one transaction, so a key never exists without its seeds.
func (s *syncService) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	log := logger.FromContext(ctx)

	key, err := utils.NewSyncKey()
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Generate").
			Msg("failed to mint sync key")
		return "", fmt.Errorf("failed to mint sync key: %w", err)
	}

	seed := make(map[string]models.Entry, len(req.Data))
	nowMs := s.now()
	for name, value := range req.Data {
		ts := req.Version[name]
		if ts <= 0 {
			ts = nowMs
		}
		seed[name] = models.Entry{Value: models.StringValue(value), UpdatedAt: ts}
	}

	if err = s.keys.Create(ctx, key, seed); err != nil {
		return "", fmt.Errorf("failed to create sync key: %w", err)
	}

	log.Info().
		Str("func", "syncService.Generate").
		Int("seed_entries", len(seed)).
		Msg("sync key generated")

	return key, nil
}

// Diff implements [SyncService]. The response carries the server's full
// version map alongside the updates, so the client can replace its cache
// wholesale and learn about entries it has never seen.
func (s *syncService) Diff(ctx context.Context, req models.DiffRequest) (models.DiffResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.guardSyncKey(ctx, req.SyncKey); err != nil {
		return models.DiffResponse{}, err
	}

	serverVersion, err := s.entries.GetVersionMap(ctx, req.SyncKey)
	if err != nil {
		return models.DiffResponse{}, fmt.Errorf("failed to read server version map: %w", err)
	}

	newer := serverVersion.NewerThan(req.Version)
	updates, err := s.entries.GetEntries(ctx, req.SyncKey, newer)
	if err != nil {
		return models.DiffResponse{}, fmt.Errorf("failed to read newer entries: %w", err)
	}

	log.Debug().
		Str("func", "syncService.Diff").
		Int("updates", len(updates)).
		Msg("diff computed")

	return models.DiffResponse{Updates: updates, Version: serverVersion}, nil
}

// Upload implements [SyncService]. Each change goes through the store's
// conditional write: only strictly newer timestamps overwrite, so replaying
// the same upload is a no-op and the returned version map is the merge result
// regardless of arrival order.
func (s *syncService) Upload(ctx context.Context, req models.UploadRequest) (models.VersionMap, error) {
	log := logger.FromContext(ctx)

	if err := s.guardSyncKey(ctx, req.SyncKey); err != nil {
		return nil, err
	}

	if err := s.entries.UpsertBatch(ctx, req.SyncKey, req.Changes); err != nil {
		return nil, fmt.Errorf("failed to merge uploaded changes: %w", err)
	}

	merged, err := s.entries.GetVersionMap(ctx, req.SyncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read post-merge version map: %w", err)
	}

	log.Debug().
		Str("func", "syncService.Upload").
		Int("changes", len(req.Changes)).
		Msg("upload merged")

	return merged, nil
}

func (s *syncService) guardSyncKey(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrNoSyncKeyProvided
	}

	exists, err := s.keys.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check sync key: %w", err)
	}
	if !exists {
		return ErrSyncKeyNotFound
	}

	return nil
}
