package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/service"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/utils"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{service.ErrInvalidPIN, http.StatusBadRequest, app.MsgInvalidPIN},
	{service.ErrUserFieldsRequired, http.StatusBadRequest, app.MsgUserFieldsRequired},
	{service.ErrEquipmentIDRequired, http.StatusBadRequest, app.MsgEquipmentIDRequired},
	{service.ErrAssignmentFieldsRequired, http.StatusBadRequest, app.MsgAssignmentFieldsRequired},
	{service.ErrMeasurementFieldsRequired, http.StatusBadRequest, app.MsgMeasurementFieldsRequired},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgLoginRequired},
	{session.ErrNoSession, http.StatusUnauthorized, app.MsgLoginRequired},
	{service.ErrUserNotFound, http.StatusUnauthorized, app.MsgUserNotFound},
	{service.ErrWrongPIN, http.StatusUnauthorized, app.MsgWrongPIN},

	{service.ErrAdminOnly, http.StatusForbidden, app.MsgAdminOnly},
	{service.ErrEquipmentNotVisible, http.StatusForbidden, app.MsgEquipmentNotVisible},
	{service.ErrNoVisibleEquipment, http.StatusForbidden, app.MsgNoVisibleEquipment},

	{service.ErrEquipmentNotFound, http.StatusNotFound, app.MsgEquipmentNotFound},
	{service.ErrAssignmentNotFound, http.StatusNotFound, app.MsgAssignmentNotFound},

	{service.ErrUserExists, http.StatusConflict, app.MsgUserExists},
	{service.ErrEquipmentExists, http.StatusConflict, app.MsgEquipmentExists},
	{service.ErrEquipmentIDInUse, http.StatusConflict, app.MsgEquipmentIDInUse},
	{service.ErrRenameNotConfirmed, http.StatusConflict, app.MsgRenameCancelled},
	{service.ErrAssignmentActive, http.StatusConflict, app.MsgAssignmentActive},
}

// statusFromError returns the HTTP status and the localized message for
// err. Unknown errors map to 500 with a generic message.
func statusFromError(err error) (int, string) {
	var adminErr *service.AdminOnlyError
	if errors.As(err, &adminErr) && adminErr.Message != "" {
		return http.StatusForbidden, adminErr.Message
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
