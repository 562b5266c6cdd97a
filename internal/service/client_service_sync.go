package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-relay/internal/adapter"
	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/store"
	"github.com/MKhiriev/go-sync-relay/models"
)

// Reserved entry names. These rows live in the same local store as user data
// but describe the synchronization itself, so they never cross the wire: the
// daemon skips them both when applying remote updates and when collecting
// local changes to upload.
const (
	syncEnabledEntry  = "sync.enabled"
	syncKeyEntry      = "sync.key"
	versionCacheEntry = "sync.versions"
)

func isReservedEntry(name string) bool {
	switch name {
	case syncEnabledEntry, syncKeyEntry, versionCacheEntry:
		return true
	}
	return false
}

type clientSyncService struct {
	repo   store.LocalEntryRepository
	server adapter.SyncClient
	cfg    config.ClientSync
	logger *logger.Logger

	// inFlight guarantees at most one reconciliation cycle at a time; a tick
	// that fires while the previous cycle is still running is dropped.
	inFlight atomic.Bool

	// disabled latches after DisableAfterNotFound consecutive unknown-key
	// responses and is never reset.
	disabled atomic.Bool

	// notFoundStreak is only touched while inFlight is held.
	notFoundStreak int

	now func() int64
}

// NewClientSyncService wires the reconciliation logic to the local store and
// the server transport.
func NewClientSyncService(repo store.LocalEntryRepository, server adapter.SyncClient, cfg config.ClientSync, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		repo:   repo,
		server: server,
		cfg:    cfg,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// GenerateKey implements [ClientSyncService]. The new group is seeded with
// every live local entry and its local timestamp; reserved entries stay home.
func (c *clientSyncService) GenerateKey(ctx context.Context) (string, error) {
	states, err := c.repo.States(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read local states: %w", err)
	}

	data := make(map[string]string, len(states))
	version := make(models.VersionMap, len(states))
	for name, entry := range states {
		if isReservedEntry(name) || entry.Deleted() {
			continue
		}
		data[name] = *entry.Value
		version[name] = entry.UpdatedAt
	}

	key, err := c.server.Generate(ctx, data, version)
	if err != nil {
		return "", fmt.Errorf("failed to generate sync key: %w", err)
	}

	c.logger.Info().
		Str("func", "clientSyncService.GenerateKey").
		Int("seed_entries", len(data)).
		Msg("sync key generated")

	return key, nil
}

// RunCycle implements [ClientSyncService].
//
// A cycle is: load the cached version map, diff against the server, apply the
// server's updates locally (with server timestamps, bypassing the local change
// callback), persist the server's version map as the new cache, then upload
// every non-reserved entry whose local timestamp is strictly greater than the
// server's, and persist the post-merge map the server answers with.
//
// Any error aborts the remainder of the cycle; the next tick starts over. The
// version cache is only replaced after the step that produced it succeeded, so
// an aborted cycle never loses knowledge of server state.
func (c *clientSyncService) RunCycle(ctx context.Context) error {
	if c.disabled.Load() {
		return ErrSyncDisabled
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil
	}
	defer c.inFlight.Store(false)

	log := logger.FromContext(ctx)

	cache, err := c.loadVersionCache(ctx)
	if err != nil {
		return err
	}

	diff, err := c.server.Diff(ctx, c.cfg.Key, cache)
	if err != nil {
		if errors.Is(err, adapter.ErrSyncKeyNotFound) {
			return c.recordNotFound(ctx, err)
		}
		return fmt.Errorf("diff failed: %w", err)
	}
	c.notFoundStreak = 0

	for name, entry := range diff.Updates {
		if isReservedEntry(name) {
			continue
		}
		if err = c.repo.ApplyRemote(ctx, name, entry.Value, entry.UpdatedAt); err != nil {
			return fmt.Errorf("failed to apply remote entry %s: %w", name, err)
		}
	}

	if err = c.saveVersionCache(ctx, diff.Version); err != nil {
		return err
	}

	changes, err := c.collectLocalChanges(ctx, diff.Version)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		log.Debug().
			Str("func", "clientSyncService.RunCycle").
			Int("applied", len(diff.Updates)).
			Msg("cycle complete, nothing to upload")
		return nil
	}

	merged, err := c.server.Upload(ctx, c.cfg.Key, changes)
	if err != nil {
		if errors.Is(err, adapter.ErrSyncKeyNotFound) {
			return c.recordNotFound(ctx, err)
		}
		return fmt.Errorf("upload failed: %w", err)
	}

	if err = c.saveVersionCache(ctx, merged); err != nil {
		return err
	}

	log.Debug().
		Str("func", "clientSyncService.RunCycle").
		Int("applied", len(diff.Updates)).
		Int("uploaded", len(changes)).
		Msg("cycle complete")

	return nil
}

func (c *clientSyncService) Disabled() bool {
	return c.disabled.Load()
}

// collectLocalChanges returns every non-reserved local entry, tombstones
// included, whose timestamp is strictly greater than the server's. Entries
// the server has never seen compare against zero and therefore always win.
func (c *clientSyncService) collectLocalChanges(ctx context.Context, serverVersion models.VersionMap) (map[string]models.Entry, error) {
	states, err := c.repo.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local states: %w", err)
	}

	changes := make(map[string]models.Entry)
	for name, entry := range states {
		if isReservedEntry(name) {
			continue
		}
		if entry.UpdatedAt > serverVersion[name] {
			changes[name] = entry
		}
	}

	return changes, nil
}

func (c *clientSyncService) recordNotFound(ctx context.Context, cause error) error {
	log := logger.FromContext(ctx)

	c.notFoundStreak++
	log.Warn().
		Str("func", "clientSyncService.recordNotFound").
		Int("streak", c.notFoundStreak).
		Msg("server does not know our sync key")

	if c.cfg.DisableAfterNotFound > 0 && c.notFoundStreak >= c.cfg.DisableAfterNotFound {
		c.disabled.Store(true)
		log.Error().
			Str("func", "clientSyncService.recordNotFound").
			Msg("synchronization disabled after repeated unknown-key responses")
		return fmt.Errorf("%w: %w", ErrSyncDisabled, cause)
	}

	return fmt.Errorf("sync key rejected: %w", cause)
}

// loadVersionCache reads the version map the server reported last, stored as
// JSON in the reserved versionCacheEntry row. A missing or corrupt cache
// degrades to an empty map: the next diff is simply larger than necessary.
func (c *clientSyncService) loadVersionCache(ctx context.Context) (models.VersionMap, error) {
	raw, err := c.repo.Get(ctx, versionCacheEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to read version cache: %w", err)
	}
	if raw == nil {
		return models.VersionMap{}, nil
	}

	var cache models.VersionMap
	if err = json.Unmarshal([]byte(*raw), &cache); err != nil {
		c.logger.Warn().
			Str("func", "clientSyncService.loadVersionCache").
			Msg("version cache is corrupt, starting from empty")
		return models.VersionMap{}, nil
	}

	return cache, nil
}

func (c *clientSyncService) saveVersionCache(ctx context.Context, version models.VersionMap) error {
	raw, err := json.Marshal(version)
	if err != nil {
		return fmt.Errorf("failed to encode version cache: %w", err)
	}

	// ApplyRemote writes without firing the local change callback, so cache
	// maintenance never looks like user activity.
	if err = c.repo.ApplyRemote(ctx, versionCacheEntry, models.StringValue(string(raw)), c.now()); err != nil {
		return fmt.Errorf("failed to store version cache: %w", err)
	}

	return nil
}
