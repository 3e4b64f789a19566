package config

import (
	"fmt"
	"time"
)

// ClientMedia holds the picker directories used by the client applications.
type ClientMedia struct {
	// ShotsDir is the staged-shots directory for the development camera.
	ShotsDir string
	// MediaDir is the image library directory.
	MediaDir string
	// DocumentsDir is the document picker directory.
	DocumentsDir string
}

// ClientUploader holds the upload orchestrator defaults for client apps.
type ClientUploader struct {
	// Destination is the default upload destination URL.
	Destination string
	// RequestTimeout bounds each outbound upload request; zero means no
	// explicit timeout.
	RequestTimeout time.Duration
	// BestEffort defaults new batches to the best-effort policy.
	BestEffort bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the upload history store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local history database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Media contains the picker directory settings.
	Media ClientMedia
	// Uploader contains the upload orchestrator defaults.
	Uploader ClientUploader
	// Storage contains client storage settings.
	Storage ClientStorage
}

// Client-side defaults applied by [GetClientConfig] when a setting is absent
// from every configuration source.
const (
	defaultShotsDir    = "shots"
	defaultMediaDir    = "media"
	defaultDocsDir     = "documents"
	defaultHistoryPath = "media-history.db"
)

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for absent settings, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Media: ClientMedia{
			ShotsDir:     cfg.Media.ShotsDir,
			MediaDir:     cfg.Media.MediaDir,
			DocumentsDir: cfg.Media.DocumentsDir,
		},
		Uploader: ClientUploader{
			Destination:    cfg.Uploader.Destination,
			RequestTimeout: cfg.Uploader.RequestTimeout,
			BestEffort:     cfg.Uploader.BestEffort,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.History.DSN,
			},
		},
	}

	if clientCfg.Media.ShotsDir == "" {
		clientCfg.Media.ShotsDir = defaultShotsDir
	}
	if clientCfg.Media.MediaDir == "" {
		clientCfg.Media.MediaDir = defaultMediaDir
	}
	if clientCfg.Media.DocumentsDir == "" {
		clientCfg.Media.DocumentsDir = defaultDocsDir
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultHistoryPath
	}

	return clientCfg, clientCfg.validate()
}
