package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-kit/internal/config"
	myHTTP "github.com/MKhiriev/go-media-kit/internal/handler/http"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/server"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/internal/store"
	"github.com/MKhiriev/go-media-kit/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("media-receiver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, log)
	ws := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handler, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
