package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/jackc/pgerrcode"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository].
// It manages metadata rows in the "files" table; blob contents live in
// [BlobStorage] and are referenced by stored_path.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type fileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFile persists a new files-index row and returns the fully populated
// [models.StoredFile] with server-assigned fields (UploadedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDigestAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *fileRepository) CreateFile(ctx context.Context, file models.StoredFile) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFile, file.ID, file.Field, file.FileName, file.MIMEType, file.SizeBytes, file.Digest, file.StoredPath)

	// create files-index row in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFile").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.StoredFile{}, ErrDigestAlreadyExists
		default:
			return models.StoredFile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved row from db
	if err := row.Scan(&file.ID, &file.Field, &file.FileName, &file.MIMEType, &file.SizeBytes, &file.Digest, &file.StoredPath, &file.UploadedAt); err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFile").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.StoredFile{}, ErrDigestAlreadyExists
		}
		return models.StoredFile{}, err
	}

	return file, nil
}

// FindFileByID retrieves the files-index row with the given id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrFileNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *fileRepository) FindFileByID(ctx context.Context, id string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findFileByID, id)

	var file models.StoredFile
	if err := row.Scan(&file.ID, &file.Field, &file.FileName, &file.MIMEType, &file.SizeBytes, &file.Digest, &file.StoredPath, &file.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredFile{}, ErrFileNotFound
		}

		log.Err(err).Str("func", "*fileRepository.FindFileByID").Msg("error: scanning error")
		return models.StoredFile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return file, nil
}

// FindFileByDigest retrieves the files-index row whose content digest matches.
// Used to resolve duplicate uploads to the already stored record.
//
// Error handling mirrors [fileRepository.FindFileByID].
func (r *fileRepository) FindFileByDigest(ctx context.Context, digest string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findFileByDigest, digest)

	var file models.StoredFile
	if err := row.Scan(&file.ID, &file.Field, &file.FileName, &file.MIMEType, &file.SizeBytes, &file.Digest, &file.StoredPath, &file.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredFile{}, ErrFileNotFound
		}

		log.Err(err).Str("func", "*fileRepository.FindFileByDigest").Msg("error: scanning error")
		return models.StoredFile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return file, nil
}

// ListFiles returns files-index rows matching the filter, newest first.
// The query is built dynamically by [buildListQuery]; an empty filter lists
// the most recent rows up to the default limit.
func (r *fileRepository) ListFiles(ctx context.Context, filter models.FileFilter) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error building list query")
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error querying files")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	files := make([]models.StoredFile, 0)
	for rows.Next() {
		var file models.StoredFile
		if err := rows.Scan(&file.ID, &file.Field, &file.FileName, &file.MIMEType, &file.SizeBytes, &file.Digest, &file.StoredPath, &file.UploadedAt); err != nil {
			log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error: scanning error")
			return nil, err
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error iterating rows")
		return nil, err
	}

	return files, nil
}

// DeleteFile removes the files-index row with the given id.
//
// Error handling:
//   - zero affected rows → [ErrFileNotFound].
//   - Any driver-level error → wrapped as "unexpected DB error".
func (r *fileRepository) DeleteFile(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFile, id)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFile").Msg("error deleting file")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFile").Msg("error getting affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

// DeleteFilesOlderThan removes all rows uploaded before cutoff and returns
// the deleted records so the caller can remove the orphaned blobs.
func (r *fileRepository) DeleteFilesOlderThan(ctx context.Context, cutoff time.Time) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, deleteFilesOlderThan, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFilesOlderThan").Msg("error deleting old files")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	deleted := make([]models.StoredFile, 0)
	for rows.Next() {
		var file models.StoredFile
		if err := rows.Scan(&file.ID, &file.Field, &file.FileName, &file.MIMEType, &file.SizeBytes, &file.Digest, &file.StoredPath, &file.UploadedAt); err != nil {
			log.Err(err).Str("func", "*fileRepository.DeleteFilesOlderThan").Msg("error: scanning error")
			return nil, err
		}
		deleted = append(deleted, file)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFilesOlderThan").Msg("error iterating rows")
		return nil, err
	}

	return deleted, nil
}
