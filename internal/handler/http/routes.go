package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-medlux/internal/app"
	"github.com/MKhiriev/go-medlux/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{"Authorization", traceIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/login", h.login)
	})

	// routes with a session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/session", h.currentSession)

		r.Get("/api/equipamentos", h.listEquipment)
		r.Get("/api/equipamentos/{id}", h.getEquipment)
		r.Get("/api/usuarios", h.listUsers)
		r.Get("/api/vinculos", h.listAssignments)
		r.Get("/api/medicoes", h.recentMeasurements)
		r.Get("/api/medicoes/equipamentos", h.visibleEquipment)
		r.Post("/api/medicoes", h.saveMeasurement)
		r.Get("/api/criterios", h.loadCriteria)

		// admin only
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin(app.MsgAdminOnly))

			r.Post("/api/equipamentos", h.createEquipment)
			r.Put("/api/equipamentos/{id}", h.updateEquipment)
			r.Delete("/api/equipamentos/{id}", h.deleteEquipment)
			r.Put("/api/usuarios/{id}/pin", h.resetPIN)
			r.Post("/api/vinculos/{id}/encerrar", h.endAssignment)
			r.Get("/api/vinculos/{id}/historico", h.assignmentHistory)
			r.Put("/api/criterios", h.saveCriteria)
		})
		r.With(h.requireAdmin(app.MsgAdminOnlyUsers)).Post("/api/usuarios", h.createUser)
		r.With(h.requireAdmin(app.MsgAdminOnlyAssignments)).Get("/api/vinculos/opcoes", h.assignmentOptions)
		r.With(h.requireAdmin(app.MsgAdminOnlyAssignments)).Post("/api/vinculos", h.createAssignment)
	})

	// printable pages
	router.Group(func(r chi.Router) {
		r.Use(h.pageAuth)
		r.Get("/relatorio/{equipID}", h.report)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
