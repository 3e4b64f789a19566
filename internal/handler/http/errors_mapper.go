package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-media-kit/internal/service"
	"github.com/MKhiriev/go-media-kit/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongSecret:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrFileNotFound: http.StatusNotFound,
	store.ErrBlobNotSaved: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
