package store

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
)

// stubFileRepository lets tests script the index behaviour without a DB.
type stubFileRepository struct {
	created      []models.StoredFile
	createErr    error
	byDigest     models.StoredFile
	byID         models.StoredFile
	findErr      error
	deleted      []string
	deleteErr    error
	prunedRows   []models.StoredFile
	pruneErr     error
	listedFilter models.FileFilter
}

func (s *stubFileRepository) CreateFile(_ context.Context, file models.StoredFile) (models.StoredFile, error) {
	if s.createErr != nil {
		return models.StoredFile{}, s.createErr
	}
	s.created = append(s.created, file)
	return file, nil
}

func (s *stubFileRepository) FindFileByID(_ context.Context, id string) (models.StoredFile, error) {
	if s.findErr != nil {
		return models.StoredFile{}, s.findErr
	}
	return s.byID, nil
}

func (s *stubFileRepository) FindFileByDigest(_ context.Context, digest string) (models.StoredFile, error) {
	if s.findErr != nil {
		return models.StoredFile{}, s.findErr
	}
	return s.byDigest, nil
}

func (s *stubFileRepository) ListFiles(_ context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	s.listedFilter = filter
	return nil, nil
}

func (s *stubFileRepository) DeleteFile(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubFileRepository) DeleteFilesOlderThan(_ context.Context, _ time.Time) ([]models.StoredFile, error) {
	return s.prunedRows, s.pruneErr
}

func newTestFileStorage(t *testing.T, repo FileRepository) (*fileStorage, BlobStorage) {
	t.Helper()
	blobs, _ := newTestBlobStorage(t)
	return &fileStorage{
		repository: repo,
		blobs:      blobs,
		uuid:       utils.NewUUIDGenerator(),
		logger:     logger.Nop(),
	}, blobs
}

func TestFileStorage_Store_AssignsServerFields(t *testing.T) {
	repo := &stubFileRepository{}
	storage, blobs := newTestFileStorage(t, repo)
	ctx := context.Background()

	incoming := models.StoredFile{Field: "image", FileName: "shot.jpg", MIMEType: "image/jpeg"}

	saved, err := storage.Store(ctx, incoming, strings.NewReader("content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected server-assigned id")
	}
	if saved.Digest == "" || saved.StoredPath == "" {
		t.Errorf("expected digest and stored path, got %+v", saved)
	}
	if saved.SizeBytes != int64(len("content")) {
		t.Errorf("expected size %d, got %d", len("content"), saved.SizeBytes)
	}

	rc, err := blobs.OpenBlob(ctx, saved.StoredPath)
	if err != nil {
		t.Fatalf("expected blob on disk: %v", err)
	}
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	if string(content) != "content" {
		t.Errorf("expected blob content, got %q", content)
	}
}

func TestFileStorage_Store_DuplicateDigestResolvesToExisting(t *testing.T) {
	existing := models.StoredFile{ID: "existing-id", Digest: "known"}
	repo := &stubFileRepository{createErr: ErrDigestAlreadyExists, byDigest: existing}
	storage, blobs := newTestFileStorage(t, repo)
	ctx := context.Background()

	saved, err := storage.Store(ctx, models.StoredFile{FileName: "dup.bin"}, strings.NewReader("dup content"))
	if err != nil {
		t.Fatalf("expected duplicate to resolve without error, got %v", err)
	}
	if saved.ID != existing.ID {
		t.Errorf("expected existing record, got %+v", saved)
	}

	// the fresh blob must be discarded
	disk := blobs.(*diskBlobStorage)
	if entries := readDirNames(t, disk.dir); len(entries) != 0 {
		t.Errorf("expected orphaned blob to be removed, found %v", entries)
	}
}

func TestFileStorage_Store_IndexFailureRemovesBlob(t *testing.T) {
	repo := &stubFileRepository{createErr: errors.New("db down")}
	storage, blobs := newTestFileStorage(t, repo)

	_, err := storage.Store(context.Background(), models.StoredFile{}, strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	disk := blobs.(*diskBlobStorage)
	if entries := readDirNames(t, disk.dir); len(entries) != 0 {
		t.Errorf("expected orphaned blob to be removed, found %v", entries)
	}
}

func TestFileStorage_Delete_RemovesRowAndBlob(t *testing.T) {
	repo := &stubFileRepository{}
	storage, blobs := newTestFileStorage(t, repo)
	ctx := context.Background()

	path, _, _, err := blobs.SaveBlob(ctx, strings.NewReader("to delete"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.byID = models.StoredFile{ID: "id-1", StoredPath: path}

	if err := storage.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "id-1" {
		t.Errorf("expected index row deleted, got %v", repo.deleted)
	}

	disk := blobs.(*diskBlobStorage)
	if entries := readDirNames(t, disk.dir); len(entries) != 0 {
		t.Errorf("expected blob removed, found %v", entries)
	}
}

func TestFileStorage_Delete_MissingRowLeavesBlobs(t *testing.T) {
	repo := &stubFileRepository{findErr: ErrFileNotFound}
	storage, _ := newTestFileStorage(t, repo)

	err := storage.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestFileStorage_PruneOlderThan(t *testing.T) {
	storageCtx := context.Background()

	repo := &stubFileRepository{}
	storage, blobs := newTestFileStorage(t, repo)

	var pruned []models.StoredFile
	for range 3 {
		path, _, _, err := blobs.SaveBlob(storageCtx, strings.NewReader(time.Now().String()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pruned = append(pruned, models.StoredFile{StoredPath: path})
	}
	repo.prunedRows = pruned

	count, err := storage.PruneOlderThan(storageCtx, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 pruned files, got %d", count)
	}

	disk := blobs.(*diskBlobStorage)
	if entries := readDirNames(t, disk.dir); len(entries) != 0 {
		t.Errorf("expected all pruned blobs removed, found %v", entries)
	}
}

func readDirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
