package main

import (
	"fmt"

	"github.com/MKhiriev/go-sync-relay/internal/adapter"
	"github.com/MKhiriev/go-sync-relay/internal/client"
	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/service"
	"github.com/MKhiriev/go-sync-relay/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sync-relay-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	syncClient, err := adapter.NewHTTPSyncClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create sync client")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, syncClient, cfg.Sync, log)

	app, err := client.NewApp(services, localStorage, cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
