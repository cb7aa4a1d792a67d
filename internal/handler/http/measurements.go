package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

func (h *Handler) visibleEquipment(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.MeasurementService.VisibleEquipment(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.visibleEquipment", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) saveMeasurement(w http.ResponseWriter, r *http.Request) {
	var req models.SaveMeasurementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.services.MeasurementService.Save(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "Handler.saveMeasurement", err)
		return
	}
	utils.WriteJSON(w, m, http.StatusCreated)
}

// recentMeasurements lists the newest measurements. "?limite=" overrides
// the configured count; a missing or non-positive value uses the default.
func (h *Handler) recentMeasurements(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = n
	}

	list, err := h.services.MeasurementService.Recent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "Handler.recentMeasurements", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}
