package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/client"
	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/picker"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/internal/store"
	"github.com/MKhiriev/go-media-kit/internal/tui"
	"github.com/MKhiriev/go-media-kit/internal/uploader"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/internal/validators"
	"github.com/MKhiriev/go-media-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("media-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// interactive gallery and documents, staged-shots camera
	provider, err := picker.NewProvider(
		picker.NewDirCamera(cfg.Media.ShotsDir, log),
		tui.NewInteractiveGallery(cfg.Media.MediaDir, log),
		tui.NewInteractiveDocuments(cfg.Media.DocumentsDir, log),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating picker provider")
	}

	upl := uploader.NewHTTPUploader(
		newHTTPClient(cfg.Uploader.RequestTimeout),
		validators.NewUploadItemValidator(),
		log,
	)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}

	services := service.NewClientServices(provider, upl, storages, log)

	ui, err := tui.New(services, provider, cfg.Uploader, models.NewBuildInfo(buildVersion, buildDate, buildCommit))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newHTTPClient(timeout time.Duration) *utils.HTTPClient {
	httpClient := utils.NewHTTPClient()
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return httpClient
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
