package models

// MediaType restricts what a camera or image-library operation may return.
type MediaType string

const (
	// MediaTypePhoto limits results to still images.
	MediaTypePhoto MediaType = "photo"

	// MediaTypeVideo limits results to videos.
	MediaTypeVideo MediaType = "video"

	// MediaTypeMixed places no restriction on the media kind.
	MediaTypeMixed MediaType = "mixed"
)

// CameraOptions parameterizes a camera capture request.
type CameraOptions struct {
	// MediaType selects what kind of media the capture should produce.
	// Empty value behaves like MediaTypePhoto.
	MediaType MediaType `json:"mediaType,omitempty"`
}

// LibraryOptions parameterizes an image-library pick request.
type LibraryOptions struct {
	// MediaType filters the library by media kind.
	// Empty value behaves like MediaTypePhoto.
	MediaType MediaType `json:"mediaType,omitempty"`

	// SelectionLimit caps how many assets one pick may return.
	// Zero means no limit.
	SelectionLimit int `json:"selectionLimit,omitempty"`
}

// DocumentOptions parameterizes a document pick request.
type DocumentOptions struct {
	// AllowedTypes filters pickable files by MIME type. An entry matches
	// either exactly ("application/pdf") or as a prefix family ("image/").
	// Empty list allows every file.
	AllowedTypes []string `json:"allowedTypes,omitempty"`
}
