package models

import "time"

// StoredFile is the receiver-side record of one accepted upload: the metadata
// row kept in the files index plus the location of the blob on disk.
type StoredFile struct {
	// ID is the server-assigned identifier of the stored file (UUID).
	ID string `json:"id"`

	// Field is the multipart field name the file arrived under,
	// typically "image" or "file".
	Field string `json:"field"`

	// FileName is the client-supplied file name from the multipart part.
	FileName string `json:"fileName"`

	// MIMEType is the content type declared for the part.
	MIMEType string `json:"type"`

	// SizeBytes is the stored blob length.
	SizeBytes int64 `json:"size"`

	// Digest is the hex-encoded BLAKE2b-256 digest of the blob contents.
	// Identical digests identify identical content: re-uploads of a known
	// blob resolve to the already stored record.
	Digest string `json:"digest"`

	// StoredPath is the blob location on the receiver's disk.
	// Excluded from JSON: clients never see server filesystem layout.
	StoredPath string `json:"-"`

	// UploadedAt is the server-side timestamp of acceptance.
	UploadedAt time.Time `json:"uploadedAt"`
}

// FileFilter carries the optional criteria of a stored-file listing request.
// Zero values mean "no restriction" for their criterion.
type FileFilter struct {
	// Field filters by the multipart field name the files arrived under.
	Field string `json:"field,omitempty"`

	// MIMEContains filters by substring match on the MIME type,
	// e.g. "image" selects all image/* uploads.
	MIMEContains string `json:"mime,omitempty"`

	// Since keeps only files uploaded at or after this instant.
	Since time.Time `json:"since,omitempty"`

	// Limit caps the number of returned rows. Zero applies the server
	// default.
	Limit int `json:"limit,omitempty"`
}
