package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerPlayback) }

func registerPlayback(r chi.Router, d deps.Deps) {
	r.Route("/api/playback", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(10 * time.Second))

		r.Post("/ayah", handlers.PlayAyah(d))
		r.Post("/surah", handlers.PlaySurah(d))
		r.Post("/pause", handlers.PausePlayback(d))
		r.Post("/resume", handlers.ResumePlayback(d))
		r.Post("/stop", handlers.StopPlayback(d))
	})
}
