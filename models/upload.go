// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadStatus tags the terminal state of an upload batch.
type UploadStatus string

const (
	// UploadStatusAllUploaded reports a fail-fast batch in which every
	// request resolved successfully. Also used for empty batches, which
	// complete immediately since no request is outstanding.
	UploadStatusAllUploaded UploadStatus = "ALL_FILES_UPLOADED"

	// UploadStatusFailedFast reports a fail-fast batch in which at least one
	// request was rejected. Only the first encountered error is carried;
	// the individual outcomes of the remaining requests are not surfaced.
	UploadStatusFailedFast UploadStatus = "AN_UPLOAD_FAILED"

	// UploadStatusPartiallyFailed reports a best-effort batch in which at
	// least one request succeeded. The failed subset travels alongside and
	// may be empty.
	UploadStatusPartiallyFailed UploadStatus = "ONE_OR_MORE_UPLOADS_FAILED"

	// UploadStatusAllFailed reports a best-effort batch in which every
	// request was rejected.
	UploadStatusAllFailed UploadStatus = "ALL_UPLOADS_FAILED"
)

// UploadItem pairs an asset with the URL it should be delivered to.
// Items are immutable once submitted: the orchestrator consumes the list a
// single time and retains no state across calls.
type UploadItem struct {
	// Asset describes the content to upload (uri, mime type, file name).
	Asset Asset `json:"asset"`

	// Destination is the URL the multipart POST is issued against.
	Destination string `json:"destination"`
}

// FailedUpload captures one rejected request of a best-effort batch.
type FailedUpload struct {
	// Item is the upload item whose request was rejected.
	Item UploadItem `json:"item"`

	// Reason is the human-readable rejection reason, taken from Err.
	Reason string `json:"reason"`

	// Err is the underlying error, kept for errors.Is/As inspection.
	// Excluded from JSON: only the flattened Reason travels.
	Err error `json:"-"`
}

// NewFailedUpload builds a [FailedUpload] for the given item, flattening err
// into the serializable Reason field.
func NewFailedUpload(item UploadItem, err error) FailedUpload {
	reason := ""
	if err != nil {
		reason = err.Error()
	}

	return FailedUpload{Item: item, Reason: reason, Err: err}
}

// UploadResult is the single value an upload batch resolves with. Failures
// are data, never control flow: the orchestrator folds every rejection into
// this record instead of returning an error.
//
// Which optional fields are populated depends on the policy that produced the
// result: FailedUploads is meaningful in best-effort mode only, Err/Error in
// fail-fast mode only.
type UploadResult struct {
	// Status is the terminal state tag of the batch.
	Status UploadStatus `json:"status"`

	// OK is the overall success flag: true for all-uploaded and
	// partially-failed results, false otherwise.
	OK bool `json:"ok"`

	// FailedUploads lists the rejected requests of a best-effort batch.
	// Nil in fail-fast mode; possibly empty in best-effort mode.
	FailedUploads []FailedUpload `json:"failedUploads,omitempty"`

	// Error is the flattened first error of a fail-fast batch.
	Error string `json:"error,omitempty"`

	// Err is the underlying first error of a fail-fast batch, kept for
	// errors.Is/As inspection. Excluded from JSON.
	Err error `json:"-"`
}

// AllUploaded constructs the successful fail-fast result. Empty batches
// resolve with it immediately regardless of policy.
func AllUploaded() UploadResult {
	return UploadResult{Status: UploadStatusAllUploaded, OK: true}
}

// UploadFailedFast constructs the fail-fast rejection result carrying the
// first encountered error.
func UploadFailedFast(err error) UploadResult {
	reason := ""
	if err != nil {
		reason = err.Error()
	}

	return UploadResult{Status: UploadStatusFailedFast, OK: false, Error: reason, Err: err}
}

// UploadsPartiallyFailed constructs the best-effort result for a batch where
// at least one request succeeded. The failed subset may be empty.
func UploadsPartiallyFailed(failed []FailedUpload) UploadResult {
	if failed == nil {
		failed = []FailedUpload{}
	}

	return UploadResult{Status: UploadStatusPartiallyFailed, OK: true, FailedUploads: failed}
}

// AllUploadsFailed constructs the best-effort result for a batch where every
// request was rejected.
func AllUploadsFailed(failed []FailedUpload) UploadResult {
	return UploadResult{Status: UploadStatusAllFailed, OK: false, FailedUploads: failed}
}
