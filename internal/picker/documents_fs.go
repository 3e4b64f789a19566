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

// fsDocuments is a non-interactive document picker backed by a directory.
// Selections resolve in name order, which keeps demos and tests
// deterministic.
type fsDocuments struct {
	rootDir string

	logger *logger.Logger
}

// NewFSDocuments constructs a [Documents] picker over the files in rootDir.
func NewFSDocuments(rootDir string, logger *logger.Logger) Documents {
	return &fsDocuments{rootDir: rootDir, logger: logger}
}

// Pick implements [Documents]. It resolves with the first file passing the
// type filter, or a not_found fault when nothing matches.
func (d *fsDocuments) Pick(ctx context.Context, opts models.DocumentOptions) (models.Asset, error) {
	assets, err := d.pick(ctx, opts, 1)
	if err != nil {
		return models.Asset{}, err
	}
	if len(assets) == 0 {
		return models.Asset{}, NewError(CodeNotFound, "no file matches the requested types")
	}

	return assets[0], nil
}

// PickMultiple implements [Documents]. It resolves with every file passing
// the type filter; an empty slice means nothing matched.
func (d *fsDocuments) PickMultiple(ctx context.Context, opts models.DocumentOptions) ([]models.Asset, error) {
	return d.pick(ctx, opts, 0)
}

func (d *fsDocuments) pick(ctx context.Context, opts models.DocumentOptions, limit int) ([]models.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("document pick aborted: %w", err)
	}

	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(d.rootDir)
	if err != nil {
		log.Err(err).Str("func", "*fsDocuments.pick").Str("dir", d.rootDir).Msg("listing documents directory failed")
		if os.IsPermission(err) {
			return nil, NewError(CodePermission, err.Error())
		}
		return nil, fmt.Errorf("read documents directory: %w", err)
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
		if limit > 0 && len(assets) == limit {
			break
		}

		path := filepath.Join(d.rootDir, name)
		if !matchesAllowedTypes(detectMIMEType(path), opts.AllowedTypes) {
			continue
		}

		asset, err := buildAsset(path, models.SourceDocuments)
		if err != nil {
			return nil, fmt.Errorf("building asset for %q: %w", name, err)
		}
		assets = append(assets, asset)
	}

	log.Debug().Str("func", "*fsDocuments.pick").Int("count", len(assets)).Msg("document pick resolved")
	return assets, nil
}
