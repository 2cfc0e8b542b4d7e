package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// ListBookmarks answers get-all-bookmarks.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Bookmarks.All())
	}
}

// BookmarksBySurah answers get-bookmarks-by-surah.
func BookmarksBySurah(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "surah"))
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid surah number")
			return
		}
		writeJSON(w, http.StatusOK, d.Bookmarks.BySurah(n))
	}
}

// AddBookmark handles the add-bookmark command. The created record reaches
// subscribers on the bookmark-added channel.
func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.BookmarkDraft
		if !decodeBody(w, r, &draft) {
			return
		}
		b := d.Bookmarks.Add(draft)
		d.Logger.Info("bookmark added",
			logger.String("id", b.ID),
			logger.Int("surah", b.SurahNumber),
			logger.Int("ayah", b.AyahNumber))
		accepted(w)
	}
}

// RemoveBookmark handles the remove-bookmark command. Removing an unknown id
// is a silent no-op; callers observe absence, not errors.
func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if removed := d.Bookmarks.Remove(id); removed == nil {
			d.Logger.Debug("remove-bookmark miss", logger.String("id", id))
		}
		accepted(w)
	}
}

// UpdateBookmarkNote handles the update-bookmark-note command.
func UpdateBookmarkNote(d deps.Deps) http.HandlerFunc {
	type body struct {
		Note string `json:"note"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req body
		if !decodeBody(w, r, &req) {
			return
		}
		id := chi.URLParam(r, "id")
		if updated := d.Bookmarks.UpdateNote(id, req.Note); updated == nil {
			d.Logger.Debug("update-bookmark-note miss", logger.String("id", id))
		}
		accepted(w)
	}
}

// ClearBookmarks handles the clear-all-bookmarks command; idempotent.
func ClearBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Bookmarks.Clear()
		accepted(w)
	}
}
