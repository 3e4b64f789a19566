package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirCamera_ConsumesShotsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-first.png", makePNG(t, 2, 2))
	writeFile(t, dir, "02-second.png", makePNG(t, 2, 2))

	cam := NewDirCamera(dir, logger.Nop())
	ctx := context.Background()

	first, err := cam.Capture(ctx, models.CameraOptions{})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "01-first.png", first[0].FileName)
	assert.Equal(t, models.SourceCamera, first[0].Source)

	second, err := cam.Capture(ctx, models.CameraOptions{})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "02-second.png", second[0].FileName)
}

func TestDirCamera_ExhaustedReportsUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "only.png", makePNG(t, 2, 2))

	cam := NewDirCamera(dir, logger.Nop())
	ctx := context.Background()

	_, err := cam.Capture(ctx, models.CameraOptions{})
	require.NoError(t, err)

	_, err = cam.Capture(ctx, models.CameraOptions{})
	require.Error(t, err)

	var capErr *Error
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, CodeCameraUnavailable, capErr.Code)
}

func TestDirCamera_MissingDirReportsUnavailable(t *testing.T) {
	cam := NewDirCamera("/does/not/exist", logger.Nop())

	_, err := cam.Capture(context.Background(), models.CameraOptions{})
	require.Error(t, err)

	var capErr *Error
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, CodeCameraUnavailable, capErr.Code)
}

func TestDirCamera_FiltersByMediaType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.pdf", []byte("%PDF-1.4\n"))
	writeFile(t, dir, "shot.png", makePNG(t, 2, 2))

	cam := NewDirCamera(dir, logger.Nop())

	// photo capture must skip the PDF even though it sorts first
	assets, err := cam.Capture(context.Background(), models.CameraOptions{MediaType: models.MediaTypePhoto})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "shot.png", assets[0].FileName)
}

func TestDirCamera_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cam := NewDirCamera(t.TempDir(), logger.Nop())

	_, err := cam.Capture(ctx, models.CameraOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
