package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/recitation", handlers.GetRecitationSettings(d))
		r.Patch("/recitation", handlers.UpdateRecitationSettings(d))
		r.Get("/translation", handlers.GetTranslationSettings(d))
		r.Patch("/translation", handlers.UpdateTranslationSettings(d))
	})

	// fixed catalogs backing the settings pickers
	r.With(d.OriginGate.Middleware(), middleware.Timeout(10*time.Second)).
		Get("/api/reciters", handlers.ListReciters(d))
	r.With(d.OriginGate.Middleware(), middleware.Timeout(10*time.Second)).
		Get("/api/translations", handlers.ListTranslations(d))
}
