package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-medlux/internal/service"
	"github.com/MKhiriev/go-medlux/models"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(&service.Services{
		AppInfoService: &mockAppInfoService{info: models.VersionInfo{Version: "1.4.0", Date: "2026-10-01", Commit: "abc123"}},
	})

	rec := serve(t, h, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.4.0","date":"2026-10-01","commit":"abc123"}`, rec.Body.String())
}
