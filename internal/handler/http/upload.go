package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-media-kit/internal/app"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
)

// upload accepts a multipart POST and stores every file part it carries.
// Parts are consumed as a stream: content is never buffered whole in memory.
// Non-file parts (no filename) are skipped. A request with no file parts is
// rejected with 400.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	reader, err := r.MultipartReader()
	if err != nil {
		log.Err(err).Msg("request is not multipart")
		http.Error(w, app.MsgMultipartExpected, http.StatusBadRequest)
		return
	}

	stored := make([]models.StoredFile, 0, 1)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Err(err).Msg("error reading multipart part")
			http.Error(w, app.MsgMalformedMultipartBody, http.StatusBadRequest)
			return
		}

		if part.FileName() == "" {
			part.Close()
			continue
		}

		file := models.StoredFile{
			Field:    part.FormName(),
			FileName: part.FileName(),
			MIMEType: part.Header.Get("Content-Type"),
		}

		saved, err := h.services.FileService.StoreUpload(ctx, file, part)
		part.Close()
		if err != nil {
			log.Err(err).Str("file_name", file.FileName).Msg("error storing uploaded file")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}

		log.Info().
			Str("file_name", saved.FileName).
			Str("field", saved.Field).
			Int64("size", saved.SizeBytes).
			Msg("file stored")

		stored = append(stored, saved)
	}

	if len(stored) == 0 {
		log.Error().Msg("multipart request carries no file parts")
		http.Error(w, app.MsgNoFilePartsProvided, http.StatusBadRequest)
		return
	}

	response := models.UploadResponse{
		Files:  stored,
		Length: len(stored),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing upload response")
	}
}
