package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServiceVersion)
	})

	// ingestion and statistics require a valid ingest token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/translation/updated", h.translationUpdated)
		r.Get("/api/stats/document/{documentID}/locale/{localeID}", h.documentStatistics)
	})

	return router
}
