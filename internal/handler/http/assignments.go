package http

import (
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	views, err := h.services.AssignmentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.listAssignments", err)
		return
	}
	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) assignmentOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.services.AssignmentService.Options(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.assignmentOptions", err)
		return
	}
	utils.WriteJSON(w, opts, http.StatusOK)
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.services.AssignmentService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "Handler.createAssignment", err)
		return
	}
	utils.WriteJSON(w, a, http.StatusCreated)
}

func (h *Handler) endAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := h.services.AssignmentService.End(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "Handler.endAssignment", err)
		return
	}
	utils.WriteJSON(w, a, http.StatusOK)
}

func (h *Handler) assignmentHistory(w http.ResponseWriter, r *http.Request) {
	periods, err := h.services.AssignmentService.History(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "Handler.assignmentHistory", err)
		return
	}
	utils.WriteJSON(w, periods, http.StatusOK)
}
