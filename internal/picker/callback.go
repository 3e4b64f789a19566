package picker

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-media-kit/models"
)

// ResultFunc receives the selected assets when a callback-form operation
// succeeds.
type ResultFunc func(assets []models.Asset)

// ErrorFunc receives the capability fault of a callback-form operation. For
// typed [*Error] faults, code and message arrive exactly as reported by the
// capability; untyped failures arrive under [CodeOthers].
type ErrorFunc func(code, message string)

// dispatch converts a future-form completion into callback form.
//
// Dispatch rules:
//   - success invokes onResult with the assets;
//   - cancellation invokes neither callback (user dismissal is a no-op);
//   - any other failure invokes onError.
func dispatch(assets []models.Asset, err error, onResult ResultFunc, onError ErrorFunc) {
	switch {
	case err == nil:
		if onResult != nil {
			onResult(assets)
		}
	case errors.Is(err, ErrCancelled):
		// swallowed: dismissing a picker must not surface as an error
	default:
		if onError == nil {
			return
		}
		var capErr *Error
		if errors.As(err, &capErr) {
			onError(capErr.Code, capErr.Message)
			return
		}
		onError(CodeOthers, err.Error())
	}
}

// CaptureWithCallbacks runs Camera.Capture and delivers its completion
// through callbacks.
func (p *Provider) CaptureWithCallbacks(ctx context.Context, opts models.CameraOptions, onResult ResultFunc, onError ErrorFunc) {
	assets, err := p.Camera.Capture(ctx, opts)
	dispatch(assets, err, onResult, onError)
}

// PickImagesWithCallbacks runs Gallery.Pick and delivers its completion
// through callbacks.
func (p *Provider) PickImagesWithCallbacks(ctx context.Context, opts models.LibraryOptions, onResult ResultFunc, onError ErrorFunc) {
	assets, err := p.Gallery.Pick(ctx, opts)
	dispatch(assets, err, onResult, onError)
}

// PickDocumentWithCallbacks runs Documents.Pick and delivers its completion
// through callbacks. A successful single pick arrives as a one-element slice.
func (p *Provider) PickDocumentWithCallbacks(ctx context.Context, opts models.DocumentOptions, onResult ResultFunc, onError ErrorFunc) {
	asset, err := p.Documents.Pick(ctx, opts)
	if err != nil {
		dispatch(nil, err, onResult, onError)
		return
	}
	dispatch([]models.Asset{asset}, nil, onResult, onError)
}

// PickDocumentsWithCallbacks runs Documents.PickMultiple and delivers its
// completion through callbacks.
func (p *Provider) PickDocumentsWithCallbacks(ctx context.Context, opts models.DocumentOptions, onResult ResultFunc, onError ErrorFunc) {
	assets, err := p.Documents.PickMultiple(ctx, opts)
	dispatch(assets, err, onResult, onError)
}
