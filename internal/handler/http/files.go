package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/app"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/go-chi/chi/v5"
)

// listFiles serves the admin listing surface. Filter criteria arrive as
// query parameters: field, mime (substring), since (RFC 3339), limit.
func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := fileFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidFilterParameters)
		http.Error(w, app.MsgInvalidFilterParameters, http.StatusBadRequest)
		return
	}

	files, err := h.services.FileService.ListFiles(ctx, filter)
	if err != nil {
		log.Err(err).Msg("error listing files")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, files, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing file list")
	}
}

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	file, err := h.services.FileService.GetFile(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error getting file")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, file, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing file record")
	}
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.FileService.DeleteFile(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("error deleting file")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// fileFilterFromQuery maps listing query parameters onto a
// [models.FileFilter]. Absent parameters leave their criterion unset.
func fileFilterFromQuery(r *http.Request) (models.FileFilter, error) {
	filter := models.FileFilter{
		Field:        r.URL.Query().Get("field"),
		MIMEContains: r.URL.Query().Get("mime"),
	}

	if since := r.URL.Query().Get("since"); since != "" {
		parsed, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return models.FileFilter{}, err
		}
		filter.Since = parsed
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return models.FileFilter{}, err
		}
		filter.Limit = parsed
	}

	return filter, nil
}
