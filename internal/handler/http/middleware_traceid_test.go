package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareHandler создаёт Handler без сервисов — достаточно для middleware.
func newBareHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func serveWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

// ───────────────────────────────────────────────────────────────────────────
// Заголовок X-Trace-ID в ответе
// ───────────────────────────────────────────────────────────────────────────

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	h := newBareHandler()

	tests := []struct {
		name     string
		incoming string
	}{
		{"client batch id", "upload-batch-0198c2f1"},
		{"uuid from another service", "550e8400-e29b-41d4-a716-446655440000"},
		{"long opaque id", "very-long-trace-id-that-is-still-valid-0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveWithTraceID(h, tt.incoming)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.incoming, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newBareHandler()

	rr := serveWithTraceID(h, "")

	id := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, id)

	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", id)
}

func TestWithTraceID_GeneratedIDsAreUnique(t *testing.T) {
	h := newBareHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := serveWithTraceID(h, "").Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

// ───────────────────────────────────────────────────────────────────────────
// Логгер с trace_id в контексте запроса
// ───────────────────────────────────────────────────────────────────────────

func TestWithTraceID_LoggerReachesHandler(t *testing.T) {
	h := newBareHandler()

	var ctxLogger *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.Header.Set(traceIDHeader, "upload-trace")

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	// логгер должен извлекаться из контекста без паники
	require.NotNil(t, ctxLogger)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithTraceID_NextRunsEvenOnErrorStatus(t *testing.T) {
	h := newBareHandler()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newBareHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := h.withTraceID(next)

	const n = 50
	done := make(chan string, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, req)
			done <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{})
	for i := 0; i < n; i++ {
		id := <-done
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n, "all generated trace IDs should be unique")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newBareHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	// контекст оригинального запроса остаётся прежним
	assert.Equal(t, originalCtx, req.Context())
}
