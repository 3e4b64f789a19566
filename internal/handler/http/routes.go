package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/upload", h.upload)
		r.Post("/api/auth/token", h.issueToken)
		r.Get("/api/version/", h.getServerVersion)
	})

	// admin routes behind a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/files/", h.listFiles)
		r.Get("/api/files/{id}", h.getFile)
		r.Delete("/api/files/{id}", h.deleteFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
