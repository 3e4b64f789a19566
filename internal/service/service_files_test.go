package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.FileStorage
// ─────────────────────────────────────────────

type mockFileStorage struct {
	storeFn  func(ctx context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error)
	getFn    func(ctx context.Context, id string) (models.StoredFile, error)
	listFn   func(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error)
	deleteFn func(ctx context.Context, id string) error
	pruneFn  func(ctx context.Context, cutoff time.Time) (int, error)
}

func (m *mockFileStorage) Store(ctx context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error) {
	if m.storeFn != nil {
		return m.storeFn(ctx, file, content)
	}
	return file, nil
}

func (m *mockFileStorage) Get(ctx context.Context, id string) (models.StoredFile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.StoredFile{}, nil
}

func (m *mockFileStorage) List(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockFileStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockFileStorage) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	if m.pruneFn != nil {
		return m.pruneFn(ctx, cutoff)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// StoreUpload
// ─────────────────────────────────────────────

func TestFileService_StoreUpload_FillsMetadataGaps(t *testing.T) {
	var stored models.StoredFile
	storage := &mockFileStorage{
		storeFn: func(_ context.Context, file models.StoredFile, _ io.Reader) (models.StoredFile, error) {
			stored = file
			return file, nil
		},
	}
	svc := NewFileService(storage, logger.Nop())

	_, err := svc.StoreUpload(context.Background(), models.StoredFile{}, strings.NewReader("content"))
	require.NoError(t, err)

	assert.Equal(t, "upload", stored.FileName)
	assert.Equal(t, "application/octet-stream", stored.MIMEType)
	assert.Equal(t, "file", stored.Field)
}

func TestFileService_StoreUpload_DerivesImageField(t *testing.T) {
	var stored models.StoredFile
	storage := &mockFileStorage{
		storeFn: func(_ context.Context, file models.StoredFile, _ io.Reader) (models.StoredFile, error) {
			stored = file
			return file, nil
		},
	}
	svc := NewFileService(storage, logger.Nop())

	incoming := models.StoredFile{FileName: "shot.jpg", MIMEType: "image/jpeg"}
	_, err := svc.StoreUpload(context.Background(), incoming, strings.NewReader("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "image", stored.Field)
}

func TestFileService_StoreUpload_KeepsExplicitField(t *testing.T) {
	var stored models.StoredFile
	storage := &mockFileStorage{
		storeFn: func(_ context.Context, file models.StoredFile, _ io.Reader) (models.StoredFile, error) {
			stored = file
			return file, nil
		},
	}
	svc := NewFileService(storage, logger.Nop())

	incoming := models.StoredFile{Field: "attachment", FileName: "shot.jpg", MIMEType: "image/jpeg"}
	_, err := svc.StoreUpload(context.Background(), incoming, strings.NewReader("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "attachment", stored.Field)
}

func TestFileService_StoreUpload_NilContent(t *testing.T) {
	svc := NewFileService(&mockFileStorage{}, logger.Nop())

	_, err := svc.StoreUpload(context.Background(), models.StoredFile{}, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFileService_StoreUpload_StorageError(t *testing.T) {
	storageErr := errors.New("disk full")
	storage := &mockFileStorage{
		storeFn: func(context.Context, models.StoredFile, io.Reader) (models.StoredFile, error) {
			return models.StoredFile{}, storageErr
		},
	}
	svc := NewFileService(storage, logger.Nop())

	_, err := svc.StoreUpload(context.Background(), models.StoredFile{}, strings.NewReader("x"))
	assert.ErrorIs(t, err, storageErr)
}

// ─────────────────────────────────────────────
// GetFile / DeleteFile / PruneOlderThan
// ─────────────────────────────────────────────

func TestFileService_GetFile_EmptyID(t *testing.T) {
	svc := NewFileService(&mockFileStorage{}, logger.Nop())

	_, err := svc.GetFile(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFileService_DeleteFile_EmptyID(t *testing.T) {
	svc := NewFileService(&mockFileStorage{}, logger.Nop())

	err := svc.DeleteFile(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFileService_PruneOlderThan_NonPositiveAge(t *testing.T) {
	pruned := false
	storage := &mockFileStorage{
		pruneFn: func(context.Context, time.Time) (int, error) {
			pruned = true
			return 0, nil
		},
	}
	svc := NewFileService(storage, logger.Nop())

	count, err := svc.PruneOlderThan(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, pruned, "non-positive age must not reach the storage")
}

func TestFileService_PruneOlderThan_CutoffInThePast(t *testing.T) {
	var cutoff time.Time
	storage := &mockFileStorage{
		pruneFn: func(_ context.Context, c time.Time) (int, error) {
			cutoff = c
			return 2, nil
		},
	}
	svc := NewFileService(storage, logger.Nop())

	count, err := svc.PruneOlderThan(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.WithinDuration(t, time.Now().Add(-time.Hour), cutoff, 5*time.Second)
}
