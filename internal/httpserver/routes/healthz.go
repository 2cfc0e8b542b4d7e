package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerHealthz) }

// No origin gate here: local supervisors probe this endpoint directly.
func registerHealthz(r chi.Router, d deps.Deps) {
	r.With(middleware.Timeout(5 * time.Second)).
		Get("/api/healthz", handlers.Healthz(d))
}
