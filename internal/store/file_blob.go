package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
)

// diskBlobStorage is the filesystem implementation of [BlobStorage]. Each
// blob is written to the configured directory under a fresh UUID name; the
// BLAKE2b-256 digest is computed while the content streams to disk, so the
// blob is never read twice.
type diskBlobStorage struct {
	dir    string
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewDiskBlobStorage constructs a [BlobStorage] rooted at cfg.BlobDir,
// creating the directory if it does not exist yet.
func NewDiskBlobStorage(cfg config.Files, log *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(cfg.BlobDir, 0o750); err != nil {
		log.Err(err).Str("func", "NewDiskBlobStorage").Msg("error creating blob directory")
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	log.Debug().Str("func", "NewDiskBlobStorage").Str("dir", cfg.BlobDir).Msg("creating disk blob storage")
	return &diskBlobStorage{
		dir:    cfg.BlobDir,
		uuid:   utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

// SaveBlob streams content to a new file in the blob directory and returns
// the file path, the hex-encoded BLAKE2b-256 digest and the byte count.
// On any failure the partially written file is removed and [ErrBlobNotSaved]
// is returned wrapped around the cause.
func (s *diskBlobStorage) SaveBlob(ctx context.Context, content io.Reader) (string, string, int64, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, s.uuid.Generate())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		log.Err(err).Str("func", "*diskBlobStorage.SaveBlob").Msg("error creating blob file")
		return "", "", 0, fmt.Errorf("%w: %w", ErrBlobNotSaved, err)
	}

	hasher := utils.AcquireDigest()
	defer utils.ReleaseDigest(hasher)

	// digest is computed while writing, no second read of the content
	size, err := io.Copy(io.MultiWriter(f, hasher), content)
	if err != nil {
		f.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*diskBlobStorage.SaveBlob").Msg("error writing blob content")
		return "", "", 0, fmt.Errorf("%w: %w", ErrBlobNotSaved, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		log.Err(err).Str("func", "*diskBlobStorage.SaveBlob").Msg("error closing blob file")
		return "", "", 0, fmt.Errorf("%w: %w", ErrBlobNotSaved, err)
	}

	digest := hex.EncodeToString(hasher.Sum(nil))

	return path, digest, size, nil
}

// OpenBlob opens the blob at the given stored path for reading.
func (s *diskBlobStorage) OpenBlob(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*diskBlobStorage.OpenBlob").Msg("error opening blob file")
		return nil, fmt.Errorf("error opening blob file: %w", err)
	}

	return f, nil
}

// RemoveBlob deletes the blob at the given stored path. A blob that is
// already gone is not an error.
func (s *diskBlobStorage) RemoveBlob(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.FromContext(ctx).Err(err).Str("func", "*diskBlobStorage.RemoveBlob").Msg("error removing blob file")
		return fmt.Errorf("error removing blob file: %w", err)
	}

	return nil
}
