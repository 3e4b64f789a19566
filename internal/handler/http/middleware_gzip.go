package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled: file listings and upload responses are
// chatty JSON, and allocating a fresh gzip state per request shows up fast.
var (
	gzipWriters = sync.Pool{
		New: func() any {
			return gzip.NewWriter(nil)
		},
	}

	gzipReaders = sync.Pool{
		New: func() any {
			return new(gzip.Reader)
		},
	}
)

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise gzip support. A body that claims
// gzip encoding but fails to parse is rejected with 400 before it reaches
// a handler.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			reader := gzipReaders.Get().(*gzip.Reader)
			if err := reader.Reset(req.Body); err != nil {
				gzipReaders.Put(reader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &pooledBody{
				Reader: reader,
				release: func() {
					reader.Close()
					gzipReaders.Put(reader)
				},
			}
			// downstream sees a plain body
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&compressingWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// pooledBody is a request body whose gzip reader returns to the pool on
// Close.
type pooledBody struct {
	io.Reader
	release func()
}

func (b *pooledBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

// compressingWriter routes handler writes through a pooled gzip writer and
// stamps the Content-Encoding header alongside the status line.
type compressingWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *compressingWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressingWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
