package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyURI           = errors.New("asset URI is required")
	ErrEmptyDestination   = errors.New("destination is required")
	ErrInvalidDestination = errors.New("destination must be a valid http(s) URL")
	ErrEmptyMIMEType      = errors.New("asset MIME type is required")
	ErrEmptyFileName      = errors.New("asset file name is required")
	ErrEmptyField         = errors.New("multipart field name is required")
	ErrInvalidSize        = errors.New("size cannot be negative")
	ErrEmptyDigest        = errors.New("content digest is required")
)
