package store

import "errors"

var (
	// ErrFileNotFound is returned when the files index has no row for the
	// requested id or digest.
	ErrFileNotFound = errors.New("file is not found")

	// ErrDigestAlreadyExists is returned by [FileRepository.CreateFile] when
	// a row with the same content digest is already indexed. Callers treat
	// it as "the content is already stored" rather than as a failure.
	ErrDigestAlreadyExists = errors.New("file with the same digest already exists")

	// ErrBlobNotSaved is returned when the blob store cannot persist the
	// uploaded content to disk.
	ErrBlobNotSaved = errors.New("blob is not saved")
)
