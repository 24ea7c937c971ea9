package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-lang-sync/internal/adapter"
	"github.com/MKhiriev/go-lang-sync/internal/client"
	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/service"
	"github.com/MKhiriev/go-lang-sync/internal/store"
	"github.com/MKhiriev/go-lang-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("langsync")
	cfg, err := config.GetSyncConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.CLI.Watch {
		// long-running: keep the terminal quiet and log next to the binary
		log = logger.NewClientLogger("langsync-watch")
		printBuildInfo()
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	fetcher, err := adapter.NewHTTPRemoteFetcher(cfg.Remote, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote fetcher")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storages")
	}

	services := service.NewServices(storages, fetcher, cfg.Remote, log)

	bg, err := workers.NewWorkers(services, cfg.Workers, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("create workers")
	}

	app, err := client.NewApp(services, storages.Versions, bg, cfg, os.Stdout, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("init app error")
	}

	runErr := app.Run()
	if err = storages.Close(); err != nil {
		log.Warn().Err(err).Msg("close storages")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("langsync run error")
		os.Exit(1)
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
