package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Use(d.OriginGate.Middleware())
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", handlers.ListBookmarks(d))
		r.Post("/", handlers.AddBookmark(d))
		r.Delete("/", handlers.ClearBookmarks(d))
		r.Get("/surah/{surah}", handlers.BookmarksBySurah(d))
		r.Delete("/{id}", handlers.RemoveBookmark(d))
		r.Put("/{id}/note", handlers.UpdateBookmarkNote(d))
	})
}
