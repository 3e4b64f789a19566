package uploader

import "errors"

// Sentinel errors folded into upload outcomes. Callers inspecting a result's
// Err (or a FailedUpload's Err) can match against them with [errors.Is].
var (
	// ErrUploadRejected reports that a destination answered with a non-2xx
	// status. The response is not inspected beyond the status line.
	ErrUploadRejected = errors.New("destination rejected upload")

	// ErrOpenAsset reports that an item's asset content could not be opened
	// for reading. The request for that item is never issued.
	ErrOpenAsset = errors.New("cannot open asset content")
)
