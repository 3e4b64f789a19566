package service

import (
	"context"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/picker"
	"github.com/MKhiriev/go-media-kit/internal/uploader"
	"github.com/MKhiriev/go-media-kit/models"
)

// mediaService is the concrete implementation of MediaService. It owns no
// state beyond its collaborators and is safe for concurrent use.
type mediaService struct {
	provider *picker.Provider
	uploader uploader.Uploader
	history  HistoryService

	logger *logger.Logger
}

// NewMediaService constructs a MediaService over the given capability
// provider and upload orchestrator. history may be nil; finished batches are
// then not recorded.
func NewMediaService(provider *picker.Provider, upl uploader.Uploader, history HistoryService, logger *logger.Logger) MediaService {
	return &mediaService{
		provider: provider,
		uploader: upl,
		history:  history,
		logger:   logger,
	}
}

// CaptureAndUpload opens the camera and delivers the captured assets to
// destination. Cancellation returns [picker.ErrCancelled] with nothing
// uploaded.
func (m *mediaService) CaptureAndUpload(ctx context.Context, opts models.CameraOptions, destination string, strict bool) (models.UploadResult, error) {
	if destination == "" {
		return models.UploadResult{}, ErrNoDestination
	}

	assets, err := m.provider.Camera.Capture(ctx, opts)
	if err != nil {
		return models.UploadResult{}, err
	}

	return m.Upload(ctx, assets, destination, strict)
}

// PickImagesAndUpload opens the image library and delivers the selection to
// destination. Cancellation returns [picker.ErrCancelled] with nothing
// uploaded.
func (m *mediaService) PickImagesAndUpload(ctx context.Context, opts models.LibraryOptions, destination string, strict bool) (models.UploadResult, error) {
	if destination == "" {
		return models.UploadResult{}, ErrNoDestination
	}

	assets, err := m.provider.Gallery.Pick(ctx, opts)
	if err != nil {
		return models.UploadResult{}, err
	}

	return m.Upload(ctx, assets, destination, strict)
}

// PickDocumentsAndUpload opens the document picker and delivers the selection
// to destination. Single or multi selection follows opts. Cancellation
// returns [picker.ErrCancelled] with nothing uploaded.
func (m *mediaService) PickDocumentsAndUpload(ctx context.Context, opts models.DocumentOptions, multiple bool, destination string, strict bool) (models.UploadResult, error) {
	if destination == "" {
		return models.UploadResult{}, ErrNoDestination
	}

	var (
		assets []models.Asset
		err    error
	)
	if multiple {
		assets, err = m.provider.Documents.PickMultiple(ctx, opts)
	} else {
		var asset models.Asset
		asset, err = m.provider.Documents.Pick(ctx, opts)
		if err == nil {
			assets = []models.Asset{asset}
		}
	}
	if err != nil {
		return models.UploadResult{}, err
	}

	return m.Upload(ctx, assets, destination, strict)
}

// Upload delivers the given assets to destination as one batch and records
// the outcome in history. The batch result is returned as data even when
// uploads failed; the error return covers flow failures only.
func (m *mediaService) Upload(ctx context.Context, assets []models.Asset, destination string, strict bool) (models.UploadResult, error) {
	if destination == "" {
		return models.UploadResult{}, ErrNoDestination
	}

	items := buildUploadItems(assets, destination)
	result := m.uploader.Upload(ctx, items, strict)

	if m.history != nil {
		if err := m.history.Record(ctx, items, result); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*mediaService.Upload").Msg("recording history ended with error")
		}
	}

	return result, nil
}

// buildUploadItems pairs every asset with the destination URL.
func buildUploadItems(assets []models.Asset, destination string) []models.UploadItem {
	items := make([]models.UploadItem, 0, len(assets))
	for _, asset := range assets {
		items = append(items, models.UploadItem{Asset: asset, Destination: destination})
	}
	return items
}
