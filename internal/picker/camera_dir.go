package picker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
)

// dirCamera is a development stand-in for camera hardware: every Capture
// consumes the next staged file from a shots directory, in name order.
// Useful for demos and tests where no real capture source exists.
type dirCamera struct {
	shotsDir string

	mu   sync.Mutex
	next int

	logger *logger.Logger
}

// NewDirCamera constructs a [Camera] that serves staged shots from shotsDir.
// Shots are consumed in lexicographic name order; once the directory is
// exhausted, Capture reports a camera_unavailable fault.
func NewDirCamera(shotsDir string, logger *logger.Logger) Camera {
	return &dirCamera{shotsDir: shotsDir, logger: logger}
}

// Capture implements [Camera]. It resolves with a single asset built from
// the next unconsumed staged shot matching the requested media type.
func (c *dirCamera) Capture(ctx context.Context, opts models.CameraOptions) ([]models.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("capture aborted: %w", err)
	}

	log := logger.FromContext(ctx)

	shots, err := c.stagedShots(opts.MediaType)
	if err != nil {
		log.Err(err).Str("func", "*dirCamera.Capture").Str("dir", c.shotsDir).Msg("listing staged shots failed")
		return nil, NewError(CodeCameraUnavailable, err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next >= len(shots) {
		return nil, NewError(CodeCameraUnavailable, "no staged shots left in "+c.shotsDir)
	}

	asset, err := buildAsset(shots[c.next], models.SourceCamera)
	if err != nil {
		return nil, NewError(CodeCameraUnavailable, err.Error())
	}
	c.next++

	log.Debug().Str("func", "*dirCamera.Capture").Str("shot", asset.FileName).Msg("captured staged shot")
	return []models.Asset{asset}, nil
}

func (c *dirCamera) stagedShots(kind models.MediaType) ([]string, error) {
	entries, err := os.ReadDir(c.shotsDir)
	if err != nil {
		return nil, fmt.Errorf("read shots directory: %w", err)
	}

	var shots []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(c.shotsDir, entry.Name())
		if matchesMediaType(detectMIMEType(path), kind) {
			shots = append(shots, path)
		}
	}
	sort.Strings(shots)

	return shots, nil
}
