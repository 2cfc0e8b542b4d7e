package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Route("/api/history", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", handlers.GetHistory(d))
		r.Put("/", handlers.SaveProgress(d))
		r.Delete("/", handlers.ClearHistory(d))
	})
}
