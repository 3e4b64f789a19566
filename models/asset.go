package models

// AssetSource identifies the capability that produced an [Asset].
type AssetSource string

const (
	// SourceCamera marks assets captured by the camera capability.
	SourceCamera AssetSource = "camera"

	// SourceLibrary marks assets selected from the image library.
	SourceLibrary AssetSource = "library"

	// SourceDocuments marks assets selected through the document picker.
	SourceDocuments AssetSource = "documents"
)

// Asset is the unified descriptor for a media item or document obtained
// through any acquisition capability (camera, image library, document picker).
//
// Every capability maps its own result shape into this record explicitly at
// the boundary, so consumers never depend on capability-specific structures.
// The uri/type/fileName triple is exactly what the upload orchestrator needs
// to build a multipart field.
type Asset struct {
	// URI locates the asset's content. Plain filesystem paths and
	// file:// URIs are accepted.
	URI string `json:"uri"`

	// MIMEType is the discoverable media type of the content, e.g.
	// "image/jpeg" or "application/pdf". Drives multipart field naming
	// during upload.
	MIMEType string `json:"type"`

	// FileName is the display name of the asset, including extension.
	FileName string `json:"fileName"`

	// Size is the content length in bytes, when known. Zero means unknown.
	Size int64 `json:"size,omitempty"`

	// Source records which capability produced the asset.
	Source AssetSource `json:"source,omitempty"`

	// Width and Height describe visual media dimensions in pixels.
	// Nil when the capability does not report them (e.g. documents).
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}
