package validators

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-media-kit/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldURI targets the content location of an asset.
	FieldURI = "uri"

	// FieldDestination targets the upload destination URL of an item.
	FieldDestination = "destination"

	// FieldMIMEType targets the declared media type of an asset or part.
	FieldMIMEType = "mime_type"

	// FieldFileName targets the display name of an asset or part.
	FieldFileName = "file_name"

	// FieldFormField targets the multipart field name a file arrived under.
	FieldFormField = "form_field"

	// FieldSize targets the byte length of an asset or stored blob.
	FieldSize = "size"

	// FieldDigest targets the content digest of a stored blob.
	FieldDigest = "digest"
)

// UploadItemValidator implements the Validator interface for the upload
// domain models: UploadItem (single, pointer, and batch forms) and
// StoredFile records arriving at the receiver.
//
// It allows optional field-level scoping via variadic field name arguments.
type UploadItemValidator struct {
}

// NewUploadItemValidator constructs a new UploadItemValidator
// and returns it as the Validator interface.
func NewUploadItemValidator() Validator {
	return &UploadItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.UploadItem / *models.UploadItem
//   - []models.UploadItem (each element validated; an empty batch is valid)
//   - models.StoredFile / *models.StoredFile
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *UploadItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadItem:
		return v.validateUploadItem(ctx, value, fields...)
	case *models.UploadItem:
		return v.validateUploadItem(ctx, *value, fields...)

	case []models.UploadItem:
		for i, item := range value {
			if err := v.validateUploadItem(ctx, item, fields...); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
		return nil

	case models.StoredFile:
		return v.validateStoredFile(ctx, value, fields...)
	case *models.StoredFile:
		return v.validateStoredFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUploadItem validates a single UploadItem.
//
// Default validated fields (when none specified):
// URI, Destination, MIMEType, FileName.
//
// The destination must parse as a URL with an http or https scheme and a
// non-empty host.
//
// Returns the first encountered validation error or nil.
func (v *UploadItemValidator) validateUploadItem(ctx context.Context, item models.UploadItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURI, FieldDestination, FieldMIMEType, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldURI:
			if item.Asset.URI == "" {
				return ErrEmptyURI
			}
		case FieldDestination:
			if item.Destination == "" {
				return ErrEmptyDestination
			}
			u, err := url.Parse(item.Destination)
			if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
				return ErrInvalidDestination
			}
		case FieldMIMEType:
			if item.Asset.MIMEType == "" {
				return ErrEmptyMIMEType
			}
		case FieldFileName:
			if item.Asset.FileName == "" {
				return ErrEmptyFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStoredFile validates a StoredFile record before it is persisted
// by the receiver.
//
// Default validated fields: FormField, FileName, MIMEType, Size, Digest.
func (v *UploadItemValidator) validateStoredFile(ctx context.Context, file models.StoredFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormField, FieldFileName, FieldMIMEType, FieldSize, FieldDigest}
	}

	for _, f := range fields {
		switch f {
		case FieldFormField:
			if file.Field == "" {
				return ErrEmptyField
			}
		case FieldFileName:
			if file.FileName == "" {
				return ErrEmptyFileName
			}
		case FieldMIMEType:
			if file.MIMEType == "" {
				return ErrEmptyMIMEType
			}
		case FieldSize:
			if file.SizeBytes < 0 {
				return ErrInvalidSize
			}
		case FieldDigest:
			if file.Digest == "" {
				return ErrEmptyDigest
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
