// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package picker defines the acquisition capabilities of go-media-kit: camera
// capture, image-library picking, and document picking.
//
// The primary abstraction is [Provider], an explicit capability bundle
// constructed once at startup and passed to consumers; it replaces any
// global capability namespace. Every capability resolves to the unified
// [models.Asset] record, mapping its own result shape explicitly at the
// boundary.
//
// Two completion idioms are supported. The interfaces below follow the
// native Go contract (values plus error); callback adapters in callback.go
// re-expose them in callback form where platform parity is required.
// Cancellation is reported through [ErrCancelled]; capability faults are
// reported through typed [*Error] values whose code and message travel to
// the caller unmodified.
//
// The package ships filesystem-backed reference implementations used by the
// example applications and tests: a staged-shots camera (NewDirCamera), a
// media-directory gallery (NewFSGallery), and a directory document picker
// (NewFSDocuments). Interactive implementations can be substituted freely;
// the TUI client provides one.
package picker

import (
	"context"

	"github.com/MKhiriev/go-media-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/picker_mock.go -package=mock

// Camera is the capture capability: it produces fresh assets on demand.
type Camera interface {
	// Capture opens the camera with the given options and resolves with the
	// captured assets. It returns [ErrCancelled] if the user dismissed the
	// camera, or a [*Error] describing a capability fault (hardware
	// unavailable, permission denied).
	Capture(ctx context.Context, opts models.CameraOptions) ([]models.Asset, error)
}

// Gallery is the image-library capability: it lets the user select existing
// media.
type Gallery interface {
	// Pick opens the image library with the given options and resolves with
	// the selected assets. An empty slice means nothing matched the options.
	// It returns [ErrCancelled] if the user dismissed the library, or a
	// [*Error] describing a capability fault.
	Pick(ctx context.Context, opts models.LibraryOptions) ([]models.Asset, error)
}

// Documents is the file-picker capability: it lets the user select arbitrary
// files, one at a time or in bulk.
type Documents interface {
	// Pick opens the document picker for a single selection and resolves
	// with the chosen asset. It returns [ErrCancelled] if the user dismissed
	// the picker, or a [*Error] describing a capability fault.
	Pick(ctx context.Context, opts models.DocumentOptions) (models.Asset, error)

	// PickMultiple opens the document picker in multi-selection mode and
	// resolves with every chosen asset. It returns [ErrCancelled] if the
	// user dismissed the picker, or a [*Error] describing a capability
	// fault.
	PickMultiple(ctx context.Context, opts models.DocumentOptions) ([]models.Asset, error)
}
