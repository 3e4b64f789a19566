package service

import (
	"context"

	"github.com/MKhiriev/go-media-kit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// MediaService glues the acquisition capabilities to the upload orchestrator:
// each method runs one picker flow and delivers the selection to the
// destination as a multipart batch.
//
// Picker cancellation short-circuits the flow: nothing is uploaded and
// [picker.ErrCancelled] is returned unchanged. An empty selection still goes
// through the orchestrator and resolves as an empty batch.
type MediaService interface {
	CaptureAndUpload(ctx context.Context, opts models.CameraOptions, destination string, strict bool) (models.UploadResult, error)
	PickImagesAndUpload(ctx context.Context, opts models.LibraryOptions, destination string, strict bool) (models.UploadResult, error)
	PickDocumentsAndUpload(ctx context.Context, opts models.DocumentOptions, multiple bool, destination string, strict bool) (models.UploadResult, error)
	Upload(ctx context.Context, assets []models.Asset, destination string, strict bool) (models.UploadResult, error)
}

// HistoryService records finished batches in the local history log and reads
// them back for display.
type HistoryService interface {
	Record(ctx context.Context, items []models.UploadItem, result models.UploadResult) error
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}
