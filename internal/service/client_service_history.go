package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/store"
	"github.com/MKhiriev/go-media-kit/internal/uploader"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
)

// historyService is the concrete implementation of HistoryService. It flattens
// a finished batch into per-item history rows and persists them in one call.
type historyService struct {
	repository store.HistoryRepository
	uuid       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHistoryService constructs a HistoryService over the given repository.
func NewHistoryService(repository store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		repository: repository,
		uuid:       utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Record writes one history row per item of a finished batch, all under a
// fresh batch id. Per-item outcome is reconstructed from the batch result:
// items listed among the failed uploads keep their rejection reason, items of
// an aborted fail-fast batch all carry the batch error, everything else is
// recorded as delivered. An empty batch records nothing.
func (h *historyService) Record(ctx context.Context, items []models.UploadItem, result models.UploadResult) error {
	if len(items) == 0 {
		return nil
	}

	batchID := h.uuid.Generate()
	now := time.Now()

	failedReasons := make(map[models.UploadItem]string, len(result.FailedUploads))
	for _, failed := range result.FailedUploads {
		failedReasons[failed.Item] = failed.Reason
	}

	entries := make([]models.HistoryEntry, 0, len(items))
	for _, item := range items {
		entry := models.HistoryEntry{
			BatchID:     batchID,
			Destination: item.Destination,
			FileName:    item.Asset.FileName,
			MIMEType:    item.Asset.MIMEType,
			Field:       uploader.FormFieldName(item.Asset.MIMEType),
			SizeBytes:   item.Asset.Size,
			Status:      result.Status,
			OK:          true,
			UploadedAt:  now,
		}

		switch {
		case result.Status == models.UploadStatusFailedFast:
			// the batch aborted: no item is known to have been delivered
			entry.OK = false
			entry.Reason = result.Error
		default:
			if reason, failed := failedReasons[item]; failed {
				entry.OK = false
				entry.Reason = reason
			}
		}

		entries = append(entries, entry)
	}

	if err := h.repository.SaveBatch(ctx, entries); err != nil {
		return fmt.Errorf("saving history batch ended with error: %w", err)
	}

	return nil
}

// Recent returns up to limit history rows, newest first.
func (h *historyService) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	return h.repository.ListRecent(ctx, limit)
}
