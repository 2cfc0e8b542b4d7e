package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerEvents) }

// No request timeout here: the event stream stays open for the life of the
// UI surface.
func registerEvents(r chi.Router, d deps.Deps) {
	r.With(d.OriginGate.Middleware()).Get("/api/events", handlers.Events(d))
}
