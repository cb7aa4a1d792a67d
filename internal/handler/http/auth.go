package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, "Handler.login", err)
		return
	}

	log.Info().Str("user_id", s.Identity.UserID).Str("role", string(s.Identity.Role)).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", s.Token))
	utils.WriteJSON(w, s, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, _ := utils.GetSessionTokenFromContext(ctx)
	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		writeServiceError(w, r, "Handler.logout", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	identity, _ := session.FromContext(r.Context())
	utils.WriteJSON(w, identity, http.StatusOK)
}

// decodeJSON decodes the request body into dst. On failure it answers 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
