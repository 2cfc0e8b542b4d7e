package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerQuran) }

// Longer timeout than the store routes: these proxy a public API.
func registerQuran(r chi.Router, d deps.Deps) {
	r.Route("/api/quran", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/surahs", handlers.ListSurahs(d))
		r.Get("/surah/{surah}", handlers.GetSurah(d))
		r.Get("/page/{page}", handlers.GetPage(d))
		r.Get("/editions", handlers.ListEditions(d))
	})
}
