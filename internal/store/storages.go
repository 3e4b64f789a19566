package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
)

// Storages groups the server-side storage layer into a single value that can
// be passed around the service layer.
type Storages struct {
	// Files exposes the files index combined with the disk blob store.
	Files FileStorage
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Connects to PostgreSQL at cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Creates the disk blob store rooted at cfg.Files.BlobDir.
//  4. Constructs and returns a [Storages] value wired to a fresh
//     [FileStorage].
//
// Returns an error if the database connection cannot be established, if
// migration fails or if the blob directory cannot be created.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewDiskBlobStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("blob storage error: %w", err)
	}

	return &Storages{
		Files: NewFileStorage(NewFileRepository(db, logger), blobs, logger),
	}, nil
}
