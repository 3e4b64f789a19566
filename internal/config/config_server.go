package config

import (
	"fmt"
	"time"
)

// ServerStorage groups the receiver's storage backend settings.
type ServerStorage struct {
	// DB holds the files-index database settings.
	DB DB
	// Files holds the on-disk blob store settings.
	Files Files
}

// ServerConfig is the top-level receiver configuration assembled from
// [StructuredConfig]. Client-only groups (media directories, uploader
// defaults, history store) are not part of this view.
type ServerConfig struct {
	// App contains admin-surface and token settings.
	App App
	// Storage contains receiver storage settings.
	Storage ServerStorage
	// Server contains the inbound transport settings.
	Server Server
	// Workers contains retention worker settings.
	Workers Workers
}

// Receiver-side defaults applied by [GetServerConfig] when a setting is
// absent from every configuration source.
const (
	defaultHTTPAddress       = "localhost:8080"
	defaultTokenIssuer       = "media-receiver"
	defaultTokenDuration     = time.Hour
	defaultRetentionInterval = time.Hour
)

// GetServerConfig builds and validates a receiver-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the receiver runtime, fills in defaults for absent settings,
// and validates the resulting [ServerConfig].
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: cfg.App,
		Storage: ServerStorage{
			DB:    cfg.Storage.DB,
			Files: cfg.Storage.Files,
		},
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.Workers.RetentionAge > 0 && serverCfg.Workers.RetentionInterval == 0 {
		serverCfg.Workers.RetentionInterval = defaultRetentionInterval
	}

	return serverCfg, serverCfg.validate()
}
