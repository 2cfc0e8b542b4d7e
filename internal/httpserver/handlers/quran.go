package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// ListSurahs proxies the surah listing from the Quran text API.
func ListSurahs(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surahs, err := d.Quran.ListSurahs(r.Context())
		if err != nil {
			d.Logger.Error("surah list fetch failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "quran api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, surahs)
	}
}

// GetSurah proxies one surah, optionally in a specific edition
// (?edition=en.sahih).
func GetSurah(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "surah"))
		if err != nil || n < 1 || n > 114 {
			writeError(w, http.StatusBadRequest, "invalid surah number")
			return
		}
		detail, err := d.Quran.GetSurah(r.Context(), n, r.URL.Query().Get("edition"))
		if err != nil {
			d.Logger.Error("surah fetch failed",
				logger.Int("surah", n),
				logger.Error(err))
			writeError(w, http.StatusBadGateway, "quran api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

// GetPage proxies one mushaf page.
func GetPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "page"))
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid page number")
			return
		}
		page, err := d.Quran.GetPage(r.Context(), n, r.URL.Query().Get("edition"))
		if err != nil {
			d.Logger.Error("page fetch failed",
				logger.Int("page", n),
				logger.Error(err))
			writeError(w, http.StatusBadGateway, "quran api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// ListEditions proxies the edition catalog (?type=translation to filter).
func ListEditions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editions, err := d.Quran.ListEditions(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			d.Logger.Error("edition list fetch failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "quran api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, editions)
	}
}
