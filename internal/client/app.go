package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/service"
	"github.com/MKhiriev/go-sync-relay/internal/store"
	"github.com/MKhiriev/go-sync-relay/internal/workers"
)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	cfg      config.ClientSync
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, cfg config.ClientSync, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}
	if storages == nil {
		return nil, errors.New("no client storages provided")
	}

	return &App{
		services: services,
		storages: storages,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run starts the daemon and blocks until a stop signal arrives. When
// synchronization is disabled in the configuration the process exits
// immediately: there is nothing else for it to do.
func (a *App) Run() error {
	if !a.cfg.Enabled {
		a.logger.Info().Msg("synchronization is disabled, nothing to run")
		return nil
	}
	if a.cfg.Key == "" {
		return fmt.Errorf("sync is enabled but no sync key is configured")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// a local write schedules an extra cycle right away instead of waiting
	// for the next tick; the in-flight guard absorbs bursts
	a.storages.EntryRepository.SetOnChange(func(name string) {
		go func() {
			if err := a.services.SyncService.RunCycle(ctx); err != nil {
				a.logger.Err(err).
					Str("entry", name).
					Msg("change-triggered reconciliation failed")
			}
		}()
	})

	workers.NewWorkers(&syncJobWorker{ctx: ctx, job: a.services.SyncJob}).Run()
	defer a.services.SyncJob.Stop()

	a.logger.Info().Msg("sync daemon started")
	<-ctx.Done()
	a.logger.Info().Msg("sync daemon stopping")

	return nil
}

// syncJobWorker adapts the ticker job to the [workers.Worker] contract.
type syncJobWorker struct {
	ctx context.Context
	job service.ClientSyncJob
}

func (w *syncJobWorker) Run() {
	w.job.Start(w.ctx)
}
