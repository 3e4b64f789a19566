package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-media-kit/internal/app"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongSecret):
			log.Err(err).Msg(app.MsgWrongSecret)
			http.Error(w, app.MsgWrongSecret, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token exchange")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.TokenResponse{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.Time,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token response")
	}
}
