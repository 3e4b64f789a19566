package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapRecorder(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// storedFileJSON marshals a minimal files-index record the way listFiles
// responds, so size assertions run against a realistic payload.
func storedFileJSON(t *testing.T) []byte {
	t.Helper()

	data, err := json.Marshal([]models.StoredFile{{
		ID:         "0198c2f1-file",
		Field:      "image",
		FileName:   "cat.png",
		MIMEType:   "image/png",
		SizeBytes:  2048,
		UploadedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	return data
}

// ───────────────────────────────────────────────────────────────────────────
// WriteHeader
// ───────────────────────────────────────────────────────────────────────────

func TestResponseWriter_RecordsStatusOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapRecorder(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError) // ignored

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_HandlerStatuses(t *testing.T) {
	tests := []struct {
		name       string
		calls      []int
		wantStatus int
	}{
		{"upload accepted", []int{http.StatusOK}, http.StatusOK},
		{"file deleted", []int{http.StatusNoContent}, http.StatusNoContent},
		{"unknown file id", []int{http.StatusNotFound}, http.StatusNotFound},
		{"bad filter params", []int{http.StatusBadRequest}, http.StatusBadRequest},
		{"store failure", []int{http.StatusInternalServerError}, http.StatusInternalServerError},
		{"second status loses", []int{http.StatusNoContent, http.StatusNotFound}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := wrapRecorder(rr)

			for _, code := range tt.calls {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ───────────────────────────────────────────────────────────────────────────
// Write
// ───────────────────────────────────────────────────────────────────────────

func TestResponseWriter_ImplicitOKOnFirstWrite(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapRecorder(rr)

	payload := storedFileJSON(t)
	n, err := w.Write(payload)

	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_SizeAccumulatesAcrossWrites(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapRecorder(rr)

	first := storedFileJSON(t)
	_, err := w.Write(first)
	require.NoError(t, err)
	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, len(first)+1, w.size)
	assert.Equal(t, w.size, rr.Body.Len())
}

func TestResponseWriter_ExplicitStatusSurvivesWrite(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapRecorder(rr)

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte(`{"error":"file not found"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, w.status)
}

func TestResponseWriter_EmptyWriteStillStampsOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapRecorder(rr)

	n, err := w.Write(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, w.size)
	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_ZeroValueBeforeUse(t *testing.T) {
	w := wrapRecorder(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.Equal(t, 0, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_HeadersReachUnderlyingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapRecorder(rr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
