package http

import (
	"bytes"
	"net/http"
)

// report renders the printable HTML report of one equipment. The page is
// rendered into a buffer first so a failure still yields a clean error
// response.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.services.ReportService.Render(r.Context(), &buf, pathParam(r, "equipID")); err != nil {
		writeServiceError(w, r, "Handler.report", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
