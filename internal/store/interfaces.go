package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-media-kit/models"
)

// FileRepository is the files index: metadata rows describing every blob the
// receiver has accepted.
type FileRepository interface {
	CreateFile(ctx context.Context, file models.StoredFile) (models.StoredFile, error)
	FindFileByID(ctx context.Context, id string) (models.StoredFile, error)
	FindFileByDigest(ctx context.Context, digest string) (models.StoredFile, error)
	ListFiles(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error)
	DeleteFile(ctx context.Context, id string) error
	DeleteFilesOlderThan(ctx context.Context, cutoff time.Time) ([]models.StoredFile, error)
}

// BlobStorage keeps the file contents on disk, addressed by the opaque path
// it hands out on save.
type BlobStorage interface {
	SaveBlob(ctx context.Context, content io.Reader) (path string, digest string, size int64, err error)
	OpenBlob(ctx context.Context, path string) (io.ReadCloser, error)
	RemoveBlob(ctx context.Context, path string) error
}

// FileStorage combines the files index and the blob store into the single
// surface the services work against: an accepted upload becomes one blob plus
// one index row, and both are kept consistent on delete and prune.
type FileStorage interface {
	Store(ctx context.Context, file models.StoredFile, content io.Reader) (models.StoredFile, error)
	Get(ctx context.Context, id string) (models.StoredFile, error)
	List(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error)
	Delete(ctx context.Context, id string) error
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
