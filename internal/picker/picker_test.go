package picker

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Shared fixtures
// ---------------------------------------------------------------------------

// makePNG encodes a real width×height PNG so content sniffing and dimension
// decoding both see a genuine image.
func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

// mediaDir lays out a small mixed-content directory:
// two PNG images, one PDF document, one plain-text file.
func mediaDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, dir, "a-cat.png", makePNG(t, 3, 2))
	writeFile(t, dir, "b-dog.png", makePNG(t, 4, 4))
	writeFile(t, dir, "report.pdf", []byte("%PDF-1.4\n%fake body\n"))
	writeFile(t, dir, "notes.txt", []byte("plain text notes"))

	return dir
}
