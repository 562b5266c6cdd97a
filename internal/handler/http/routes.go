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
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/sync", func(r chi.Router) {
		r.Post("/generate", h.generateSyncKey)
		r.Post("/diff", h.diff)
		r.Post("/upload", h.upload)
	})

	router.Get("/api/version", h.getServerVersion)

	return router
}
