// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package uploader implements the upload orchestration routine of
// go-media-kit.
//
// The orchestrator accepts a batch of (asset, destination) pairs, builds one
// multipart request body per pair, issues every request concurrently, and
// resolves with a single [models.UploadResult] according to one of two
// completion policies:
//
//   - fail-fast (strict): wait for all requests to finish; the first
//     rejection decides the outcome and the remaining requests' individual
//     statuses are not surfaced;
//   - best-effort: wait for all requests to settle and report the failed
//     subset alongside the overall status.
//
// Failures are data, not control flow: Upload never returns an error. Every
// rejection, including request-body construction problems and non-2xx
// responses, is folded into the result value. Once a batch is issued there is
// no way to abort its in-flight requests, and no retries are attempted.
package uploader

import (
	"context"

	"github.com/MKhiriev/go-media-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/uploader_mock.go -package=mock

// Uploader is the upload orchestration contract.
type Uploader interface {
	// Upload fans items out as concurrent multipart POSTs and resolves with
	// the batch outcome. strict selects the completion policy: true applies
	// fail-fast semantics, false applies best-effort semantics. An empty
	// batch resolves immediately as fully uploaded since no request is
	// outstanding.
	//
	// The returned result is always well-formed; Upload never panics on
	// malformed items and never lets a request failure escape as an error.
	Upload(ctx context.Context, items []models.UploadItem, strict bool) models.UploadResult
}
