package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/store"
	"github.com/MKhiriev/go-media-kit/internal/uploader"
	"github.com/MKhiriev/go-media-kit/models"
)

// fileService is the concrete implementation of FileService. It validates
// incoming upload metadata and delegates persistence to the file storage.
type fileService struct {
	storage store.FileStorage

	logger *logger.Logger
}

// NewFileService constructs a FileService over the given file storage.
func NewFileService(storage store.FileStorage, logger *logger.Logger) FileService {
	return &fileService{
		storage: storage,
		logger:  logger,
	}
}

// StoreUpload accepts one file part of a multipart upload. Metadata gaps are
// filled before persistence: a missing file name becomes "upload", a missing
// content type becomes application/octet-stream, a missing field is derived
// from the content type the same way sending clients derive it.
//
// Duplicate content resolves to the already stored record; the caller cannot
// distinguish it from a fresh store and does not need to.
func (s *fileService) StoreUpload(ctx context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if content == nil {
		log.Error().Str("func", "*fileService.StoreUpload").Msg("no content provided")
		return models.StoredFile{}, ErrInvalidDataProvided
	}

	if file.FileName == "" {
		file.FileName = "upload"
	}
	if file.MIMEType == "" {
		file.MIMEType = "application/octet-stream"
	}
	if file.Field == "" {
		file.Field = uploader.FormFieldName(file.MIMEType)
	}

	stored, err := s.storage.Store(ctx, file, content)
	if err != nil {
		log.Err(err).Str("func", "*fileService.StoreUpload").Str("file_name", file.FileName).Msg("storing upload ended with error")
		return models.StoredFile{}, fmt.Errorf("storing upload ended with error: %w", err)
	}

	return stored, nil
}

// GetFile returns the stored-file record with the given id.
func (s *fileService) GetFile(ctx context.Context, id string) (models.StoredFile, error) {
	if id == "" {
		return models.StoredFile{}, ErrInvalidDataProvided
	}

	return s.storage.Get(ctx, id)
}

// ListFiles returns stored-file records matching the filter, newest first.
func (s *fileService) ListFiles(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	return s.storage.List(ctx, filter)
}

// DeleteFile removes the stored-file record and its blob.
func (s *fileService) DeleteFile(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	return s.storage.Delete(ctx, id)
}

// PruneOlderThan removes every stored file older than age and reports how
// many records were removed. A non-positive age prunes nothing.
func (s *fileService) PruneOlderThan(ctx context.Context, age time.Duration) (int, error) {
	if age <= 0 {
		return 0, nil
	}

	return s.storage.PruneOlderThan(ctx, time.Now().Add(-age))
}
