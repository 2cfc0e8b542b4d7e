package handlers

import (
	"net/http"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
)

// GetHistory answers get-reading-history / get-last-progress. Returns JSON
// null when no progress has been recorded.
func GetHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.History.LastProgress())
	}
}

// SaveProgress handles save-reading-progress. An invalid tuple (any value
// non-positive) discards the whole write and keeps prior state; the caller
// still gets 202 and the rejection is only logged.
func SaveProgress(d deps.Deps) http.HandlerFunc {
	type body struct {
		SurahNumber int `json:"surahNumber"`
		AyahNumber  int `json:"ayahNumber"`
		PageNumber  int `json:"pageNumber"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req body
		if !decodeBody(w, r, &req) {
			return
		}
		d.History.SaveProgress(req.SurahNumber, req.AyahNumber, req.PageNumber)
		accepted(w)
	}
}

// ClearHistory handles clear-reading-history.
func ClearHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.History.Clear()
		accepted(w)
	}
}
