package http

import (
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Version(r.Context()), http.StatusOK)
}
