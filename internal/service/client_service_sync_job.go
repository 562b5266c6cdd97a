package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
)

// defaultSyncInterval is used when the configuration leaves the interval
// unset.
const defaultSyncInterval = 30 * time.Second

type clientSyncJob struct {
	service  ClientSyncService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob builds the ticker loop around a [ClientSyncService].
func NewClientSyncJob(service ClientSyncService, cfg config.ClientSync, logger *logger.Logger) ClientSyncJob {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &clientSyncJob{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Start implements [ClientSyncJob]. The first cycle runs immediately; later
// cycles follow the configured interval. The loop exits when ctx is
// cancelled, Stop is called, or the service disables itself.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel != nil {
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(jobCtx)

	j.logger.Info().
		Str("func", "clientSyncJob.Start").
		Dur("interval", j.interval).
		Msg("sync job started")
}

// Stop implements [ClientSyncJob].
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()

	j.logger.Info().
		Str("func", "clientSyncJob.Stop").
		Msg("sync job stopped")
}

func (j *clientSyncJob) run(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	if !j.cycle(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !j.cycle(ctx) {
				return
			}
		}
	}
}

// cycle runs one reconciliation pass and reports whether the loop should keep
// going.
func (j *clientSyncJob) cycle(ctx context.Context) bool {
	err := j.service.RunCycle(ctx)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrSyncDisabled):
		j.logger.Warn().
			Str("func", "clientSyncJob.cycle").
			Msg("sync service disabled itself, stopping the loop")
		return false
	case errors.Is(err, context.Canceled):
		return false
	default:
		// transient failure: log and let the next tick retry
		j.logger.Err(err).
			Str("func", "clientSyncJob.cycle").
			Msg("reconciliation cycle failed")
		return true
	}
}
