package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
)

type localHistoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &localHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBatch appends all entries of one finished batch in a single
// transaction, so history never records a batch half-written.
func (l *localHistoryRepository) SaveBatch(ctx context.Context, entries []models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localHistoryRepository.SaveBatch").
			Msg("failed to begin history transaction")
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		_, err := tx.ExecContext(ctx, saveSingleHistoryEntry,
			entry.BatchID,
			entry.Destination,
			entry.FileName,
			entry.MIMEType,
			entry.Field,
			entry.SizeBytes,
			entry.Status,
			entry.OK,
			entry.Reason,
			entry.UploadedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localHistoryRepository.SaveBatch").
				Str("batch_id", entry.BatchID).
				Str("file_name", entry.FileName).
				Msg("failed to insert history entry")
			return fmt.Errorf("failed to save history entry (batch_id=%s): %w", entry.BatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localHistoryRepository.SaveBatch").
			Msg("failed to commit history transaction")
		return fmt.Errorf("failed to commit history transaction: %w", err)
	}

	return nil
}

// ListRecent returns up to limit history entries, newest first.
func (l *localHistoryRepository) ListRecent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := l.DB.QueryContext(ctx, getRecentHistory, limit)
	if err != nil {
		log.Err(err).
			Str("func", "localHistoryRepository.ListRecent").
			Msg("failed to query history")
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var entry models.HistoryEntry
		scanErr := rows.Scan(
			&entry.ID,
			&entry.BatchID,
			&entry.Destination,
			&entry.FileName,
			&entry.MIMEType,
			&entry.Field,
			&entry.SizeBytes,
			&entry.Status,
			&entry.OK,
			&entry.Reason,
			&entry.UploadedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localHistoryRepository.ListRecent").
				Msg("failed to scan history row")
			return nil, fmt.Errorf("failed to scan history row: %w", scanErr)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "localHistoryRepository.ListRecent").
			Msg("failed to iterate history rows")
		return nil, err
	}

	return entries, nil
}
