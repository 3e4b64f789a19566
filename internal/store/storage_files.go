package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
)

// fileStorage is the default implementation of [FileStorage]. It writes the
// blob first, then the index row; when the index reports a duplicate digest
// the fresh blob is discarded and the already stored record is returned, so
// re-uploading known content is idempotent.
type fileStorage struct {
	repository FileRepository
	blobs      BlobStorage
	uuid       *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewFileStorage constructs a [FileStorage] over the given index repository
// and blob store.
func NewFileStorage(repository FileRepository, blobs BlobStorage, log *logger.Logger) FileStorage {
	log.Debug().Msg("creating file storage")
	return &fileStorage{
		repository: repository,
		blobs:      blobs,
		uuid:       utils.NewUUIDGenerator(),
		logger:     log,
	}
}

// Store accepts one uploaded file: content goes to the blob store, metadata
// to the files index. The incoming file carries the client-visible fields
// (Field, FileName, MIMEType); ID, SizeBytes, Digest, StoredPath and
// UploadedAt are assigned here.
//
// A duplicate digest resolves to the existing record: the new blob is
// removed and the indexed [models.StoredFile] is returned with a nil error.
func (s *fileStorage) Store(ctx context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	path, digest, size, err := s.blobs.SaveBlob(ctx, content)
	if err != nil {
		return models.StoredFile{}, err
	}

	file.ID = s.uuid.Generate()
	file.StoredPath = path
	file.Digest = digest
	file.SizeBytes = size

	saved, err := s.repository.CreateFile(ctx, file)
	if err != nil {
		// orphaned blob either way
		if removeErr := s.blobs.RemoveBlob(ctx, path); removeErr != nil {
			log.Err(removeErr).Str("func", "*fileStorage.Store").Msg("error removing orphaned blob")
		}

		if errors.Is(err, ErrDigestAlreadyExists) {
			log.Debug().Str("func", "*fileStorage.Store").Str("digest", digest).Msg("duplicate content, resolving to stored record")
			return s.repository.FindFileByDigest(ctx, digest)
		}
		return models.StoredFile{}, err
	}

	return saved, nil
}

// Get returns the files-index record with the given id.
func (s *fileStorage) Get(ctx context.Context, id string) (models.StoredFile, error) {
	return s.repository.FindFileByID(ctx, id)
}

// List returns files-index records matching the filter, newest first.
func (s *fileStorage) List(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	return s.repository.ListFiles(ctx, filter)
}

// Delete removes both the index row and the blob. The row goes first: if it
// is missing [ErrFileNotFound] is returned and the blob is left untouched.
func (s *fileStorage) Delete(ctx context.Context, id string) error {
	file, err := s.repository.FindFileByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteFile(ctx, id); err != nil {
		return err
	}

	return s.blobs.RemoveBlob(ctx, file.StoredPath)
}

// PruneOlderThan deletes every file uploaded before cutoff, blobs included,
// and reports how many records were removed. Blob removal failures do not
// abort the prune; the first one is reported after all rows are processed.
func (s *fileStorage) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.repository.DeleteFilesOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	var firstErr error
	for _, file := range deleted {
		if err := s.blobs.RemoveBlob(ctx, file.StoredPath); err != nil {
			log.Err(err).Str("func", "*fileStorage.PruneOlderThan").Str("path", file.StoredPath).Msg("error removing pruned blob")
			if firstErr == nil {
				firstErr = fmt.Errorf("error removing pruned blob: %w", err)
			}
		}
	}

	return len(deleted), firstErr
}
