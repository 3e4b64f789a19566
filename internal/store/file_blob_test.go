package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
)

func newTestBlobStorage(t *testing.T) (BlobStorage, string) {
	t.Helper()

	dir := t.TempDir()
	blobs, err := NewDiskBlobStorage(config.Files{BlobDir: dir}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create blob storage: %v", err)
	}
	return blobs, dir
}

func TestDiskBlobStorage_SaveBlob(t *testing.T) {
	blobs, dir := newTestBlobStorage(t)
	ctx := context.Background()

	content := []byte("stored content")

	path, digest, size, err := blobs.SaveBlob(ctx, strings.NewReader(string(content)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), size)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("expected blob under %s, got %s", dir, path)
	}
	if digest != utils.DigestString(string(content)) {
		t.Errorf("digest mismatch: got %s", digest)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read blob back: %v", err)
	}
	if string(written) != string(content) {
		t.Errorf("expected blob content %q, got %q", content, written)
	}
}

func TestDiskBlobStorage_SaveBlob_DistinctPaths(t *testing.T) {
	blobs, _ := newTestBlobStorage(t)
	ctx := context.Background()

	first, _, _, err := blobs.SaveBlob(ctx, strings.NewReader("same"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, _, err := blobs.SaveBlob(ctx, strings.NewReader("same"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Errorf("expected distinct blob paths, both were %s", first)
	}
}

func TestDiskBlobStorage_SaveBlob_ReaderFailure(t *testing.T) {
	blobs, dir := newTestBlobStorage(t)

	_, _, _, err := blobs.SaveBlob(context.Background(), &failingReader{})
	if !errors.Is(err, ErrBlobNotSaved) {
		t.Fatalf("expected ErrBlobNotSaved, got %v", err)
	}

	// partially written file must not survive
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("failed to read blob dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty blob dir after failed save, found %d entries", len(entries))
	}
}

func TestDiskBlobStorage_OpenBlob(t *testing.T) {
	blobs, _ := newTestBlobStorage(t)
	ctx := context.Background()

	path, _, _, err := blobs.SaveBlob(ctx, strings.NewReader("readable"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rc, err := blobs.OpenBlob(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("failed to read blob: %v", err)
	}
	if string(content) != "readable" {
		t.Errorf("expected blob content, got %q", content)
	}
}

func TestDiskBlobStorage_OpenBlob_Missing(t *testing.T) {
	blobs, dir := newTestBlobStorage(t)

	_, err := blobs.OpenBlob(context.Background(), filepath.Join(dir, "missing"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestDiskBlobStorage_RemoveBlob(t *testing.T) {
	blobs, _ := newTestBlobStorage(t)
	ctx := context.Background()

	path, _, _, err := blobs.SaveBlob(ctx, strings.NewReader("gone"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := blobs.RemoveBlob(ctx, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected blob to be removed, stat err: %v", err)
	}

	// removing an already removed blob is not an error
	if err := blobs.RemoveBlob(ctx, path); err != nil {
		t.Errorf("expected idempotent remove, got %v", err)
	}
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failure")
}
