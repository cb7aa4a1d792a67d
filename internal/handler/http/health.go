package http

import (
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

// health reports whether the store answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.health").Msg("store ping failed")
		utils.WriteJSON(w, models.MessageResponse{Message: "unavailable"}, http.StatusServiceUnavailable)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
}
