package http

import "net/http"

// getServerVersion reports the receiver's build version as plain text, so
// clients can check compatibility before uploading.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
