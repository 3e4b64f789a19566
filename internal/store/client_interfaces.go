package store

import (
	"context"

	"github.com/MKhiriev/go-media-kit/models"
)

// HistoryRepository is the client-side upload history log. Entries are
// written once per finished batch and only ever read back for display.
type HistoryRepository interface {
	SaveBatch(ctx context.Context, entries []models.HistoryEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}
