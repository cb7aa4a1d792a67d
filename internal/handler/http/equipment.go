package http

import (
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.EquipmentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.listEquipment", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getEquipment(w http.ResponseWriter, r *http.Request) {
	e, err := h.services.EquipmentService.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "Handler.getEquipment", err)
		return
	}
	utils.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) createEquipment(w http.ResponseWriter, r *http.Request) {
	var req models.SaveEquipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.services.EquipmentService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "Handler.createEquipment", err)
		return
	}
	utils.WriteJSON(w, e, http.StatusCreated)
}

// updateEquipment saves the record named in the URL. A body id different
// from the URL id renames the record and needs "confirmar_renomeio".
func (h *Handler) updateEquipment(w http.ResponseWriter, r *http.Request) {
	var req models.SaveEquipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.services.EquipmentService.Update(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, "Handler.updateEquipment", err)
		return
	}
	utils.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) deleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EquipmentService.Delete(r.Context(), pathParam(r, "id")); err != nil {
		writeServiceError(w, r, "Handler.deleteEquipment", err)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEquipmentDeleted}, http.StatusOK)
}
