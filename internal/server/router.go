package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"prwatch/internal/engine"
	"prwatch/internal/server/handler"
)

// NewRouter creates and configures the control API router.
func NewRouter(ctrl handler.Controller, markers *engine.Markers, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		h := handler.NewControlHandler(ctrl, markers, logger)
		r.Get("/menu", h.Menu)
		r.Post("/refresh", h.Refresh)
		r.Post("/seen", h.Seen)
		r.Post("/open", h.Open)
	})

	return r
}
