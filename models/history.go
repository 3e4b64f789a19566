// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryEntry is one row of the client-side upload history: the recorded
// outcome of a single item within a finished batch. History is a convenience
// log for the example apps — it is never consulted to resume or retry
// uploads.
type HistoryEntry struct {
	// ID is the local auto-increment identifier of the row.
	ID int64 `json:"id"`

	// BatchID groups entries that were part of the same Upload call (UUID).
	BatchID string `json:"batchId"`

	// Destination is the URL the item was posted to.
	Destination string `json:"destination"`

	// FileName, MIMEType and Field describe the multipart field the item
	// was sent as.
	FileName string `json:"fileName"`
	MIMEType string `json:"type"`
	Field    string `json:"field"`

	// SizeBytes is the asset size at upload time, when known.
	SizeBytes int64 `json:"size,omitempty"`

	// Status is the batch-level status the item's batch resolved with.
	Status UploadStatus `json:"status"`

	// OK reports whether this particular item succeeded.
	OK bool `json:"ok"`

	// Reason is the item's rejection reason, empty for successful items.
	Reason string `json:"reason,omitempty"`

	// UploadedAt is the local timestamp the batch finished at.
	UploadedAt time.Time `json:"uploadedAt"`
}
