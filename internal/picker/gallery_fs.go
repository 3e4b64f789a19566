package picker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
)

// fsGallery is a non-interactive image library backed by a media directory.
// Pick selects the first matching entries in name order, which keeps demos
// and tests deterministic.
type fsGallery struct {
	mediaDir string

	logger *logger.Logger
}

// NewFSGallery constructs a [Gallery] over the media files in mediaDir.
func NewFSGallery(mediaDir string, logger *logger.Logger) Gallery {
	return &fsGallery{mediaDir: mediaDir, logger: logger}
}

// Pick implements [Gallery]. It resolves with the media-directory entries
// matching opts, capped by opts.SelectionLimit when it is positive.
func (g *fsGallery) Pick(ctx context.Context, opts models.LibraryOptions) ([]models.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("library pick aborted: %w", err)
	}

	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(g.mediaDir)
	if err != nil {
		log.Err(err).Str("func", "*fsGallery.Pick").Str("dir", g.mediaDir).Msg("listing media directory failed")
		if os.IsPermission(err) {
			return nil, NewError(CodePermission, err.Error())
		}
		return nil, fmt.Errorf("read media directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var assets []models.Asset
	for _, name := range names {
		if opts.SelectionLimit > 0 && len(assets) == opts.SelectionLimit {
			break
		}

		path := filepath.Join(g.mediaDir, name)
		if !matchesMediaType(detectMIMEType(path), opts.MediaType) {
			continue
		}

		asset, err := buildAsset(path, models.SourceLibrary)
		if err != nil {
			return nil, fmt.Errorf("building asset for %q: %w", name, err)
		}
		assets = append(assets, asset)
	}

	log.Debug().Str("func", "*fsGallery.Pick").Int("count", len(assets)).Msg("library pick resolved")
	return assets, nil
}
