package http

import (
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "Handler.listUsers", err)
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "Handler.createUser", err)
		return
	}
	utils.WriteJSON(w, u, http.StatusCreated)
}

func (h *Handler) resetPIN(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPINRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.UserService.ResetPIN(r.Context(), pathParam(r, "id"), req); err != nil {
		writeServiceError(w, r, "Handler.resetPIN", err)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPINUpdated}, http.StatusOK)
}
