package picker

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-media-kit/models"
	"github.com/gabriel-vasile/mimetype"
)

const defaultMIMEType = "application/octet-stream"

// buildAsset maps one filesystem entry into the unified asset record:
// size from stat, MIME type from content sniffing, pixel dimensions for
// decodable images.
func buildAsset(path string, source models.AssetSource) (models.Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Asset{}, fmt.Errorf("stat asset %q: %w", path, err)
	}
	if info.IsDir() {
		return models.Asset{}, fmt.Errorf("asset %q is a directory", path)
	}

	asset := models.Asset{
		URI:      path,
		MIMEType: detectMIMEType(path),
		FileName: info.Name(),
		Size:     info.Size(),
		Source:   source,
	}

	if strings.HasPrefix(asset.MIMEType, "image/") {
		if w, h, ok := imageDimensions(path); ok {
			asset.Width, asset.Height = &w, &h
		}
	}

	return asset, nil
}

// AssetFromPath maps a filesystem entry into the unified asset record.
// Interactive picker implementations outside this package use it to keep
// their results shaped exactly like the filesystem-backed ones.
func AssetFromPath(path string, source models.AssetSource) (models.Asset, error) {
	return buildAsset(path, source)
}

// detectMIMEType determines the content type by sniffing the file's leading
// bytes, falling back to extension-based lookup when the file cannot be read
// or the sniffer only produces its generic octet-stream answer.
func detectMIMEType(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return mimeTypeFromExtension(path)
	}
	defer file.Close()

	// Read first 512 bytes for content detection
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	if n > 0 {
		mt := mimetype.Detect(buf[:n])
		if !mt.Is(defaultMIMEType) {
			return mt.String()
		}
	}

	return mimeTypeFromExtension(path)
}

func mimeTypeFromExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}

	return defaultMIMEType
}

func imageDimensions(path string) (width, height int, ok bool) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, false
	}

	return cfg.Width, cfg.Height, true
}

// matchesMediaType reports whether a MIME type satisfies the requested media
// kind. An empty kind behaves like photo.
func matchesMediaType(mimeType string, kind models.MediaType) bool {
	switch kind {
	case models.MediaTypeVideo:
		return strings.HasPrefix(mimeType, "video/")
	case models.MediaTypeMixed:
		return strings.HasPrefix(mimeType, "image/") || strings.HasPrefix(mimeType, "video/")
	default:
		return strings.HasPrefix(mimeType, "image/")
	}
}

// matchesAllowedTypes reports whether a MIME type passes the document-picker
// type filter. Entries match exactly ("application/pdf") or as a prefix
// family ("image/"). An empty filter allows everything.
func matchesAllowedTypes(mimeType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	for _, t := range allowed {
		if t == "" {
			continue
		}
		if strings.HasSuffix(t, "/") {
			if strings.HasPrefix(mimeType, t) {
				return true
			}
			continue
		}
		if mimeType == t {
			return true
		}
	}

	return false
}
