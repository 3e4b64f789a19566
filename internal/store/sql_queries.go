package store

import (
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/Masterminds/squirrel"
)

const (
	createFile = `INSERT INTO files (id, field, file_name, mime_type, size_bytes, digest, stored_path)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, field, file_name, mime_type, size_bytes, digest, stored_path, uploaded_at;`

	findFileByID = `SELECT id, field, file_name, mime_type, size_bytes, digest, stored_path, uploaded_at
    FROM files
    WHERE id = $1;`

	findFileByDigest = `SELECT id, field, file_name, mime_type, size_bytes, digest, stored_path, uploaded_at
    FROM files
    WHERE digest = $1;`

	deleteFile = `DELETE FROM files
    WHERE id = $1;`

	deleteFilesOlderThan = `DELETE FROM files
    WHERE uploaded_at < $1
    RETURNING id, field, file_name, mime_type, size_bytes, digest, stored_path, uploaded_at;`
)

// defaultListLimit caps listings when the filter does not ask for a limit.
const defaultListLimit = 100

// buildListQuery dynamically builds SELECT query for the files index based on
// the optional criteria in filter. Zero-valued criteria are skipped.
func buildListQuery(filter models.FileFilter) (string, []any, error) {
	query := squirrel.
		Select("id", "field", "file_name", "mime_type", "size_bytes", "digest", "stored_path", "uploaded_at").
		From("files").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("uploaded_at DESC")

	if filter.Field != "" {
		query = query.Where(squirrel.Eq{"field": filter.Field})
	}
	if filter.MIMEContains != "" {
		query = query.Where(squirrel.ILike{"mime_type": "%" + filter.MIMEContains + "%"})
	}
	if !filter.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{"uploaded_at": filter.Since})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query = query.Limit(uint64(limit))

	return query.ToSql()
}
