package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [HistoryRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// HistoryRepository is the SQLite-backed log of finished upload batches
	// kept locally on the client device.
	HistoryRepository HistoryRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates the history schema when it does not exist yet.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [HistoryRepository].
//
// Returns an error if the database connection cannot be established or if
// the schema cannot be created.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	for _, stmt := range []string{createHistoryTable, createHistoryBatchIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("history schema error: %w", err)
		}
	}

	return &ClientStorages{
		HistoryRepository: NewLocalHistoryRepository(db, logger),
	}, nil
}
