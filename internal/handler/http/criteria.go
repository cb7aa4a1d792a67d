package http

import (
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

// loadCriteria returns every criterion, or those of one norm with "?norma=".
func (h *Handler) loadCriteria(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.Criterion
		err  error
	)
	if norm := r.URL.Query().Get("norma"); norm != "" {
		list, err = h.services.CriteriaService.ByNorm(r.Context(), norm)
	} else {
		list, err = h.services.CriteriaService.Load(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, "Handler.loadCriteria", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) saveCriteria(w http.ResponseWriter, r *http.Request) {
	var items []models.Criterion
	if !decodeJSON(w, r, &items) {
		return
	}

	saved, err := h.services.CriteriaService.Save(r.Context(), items)
	if err != nil {
		writeServiceError(w, r, "Handler.saveCriteria", err)
		return
	}
	utils.WriteJSON(w, saved, http.StatusOK)
}
