package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerPrayer) }

func registerPrayer(r chi.Router, d deps.Deps) {
	r.Route("/api/prayer", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/timings", handlers.GetPrayerTimings(d))
		r.Get("/location", handlers.ResolveLocation(d))
		r.Post("/refresh", handlers.RefreshPrayerWatch(d))
	})

	r.Route("/api/calendar", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/hijri", handlers.GetHijriDate(d))
		r.Get("/important-dates", handlers.ListImportantDates(d))
	})
}
