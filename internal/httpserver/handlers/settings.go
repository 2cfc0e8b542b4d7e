package handlers

import (
	"net/http"
	"strings"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/settings"
)

// GetRecitationSettings answers get-recitation-settings.
func GetRecitationSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Recitation.Get())
	}
}

// UpdateRecitationSettings handles update-recitation-settings. Invalid
// fields are dropped silently; the dropped names are reported in a response
// header so a stricter caller can detect the correction without changing
// the command's fire-and-forget contract.
func UpdateRecitationSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch settings.RecitationPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		_, dropped := d.Recitation.Update(patch)
		if len(dropped) > 0 {
			w.Header().Set("X-Dropped-Fields", strings.Join(dropped, ","))
			d.Logger.Debug("recitation update dropped fields",
				logger.String("fields", strings.Join(dropped, ",")))
		}
		accepted(w)
	}
}

// GetTranslationSettings answers get-translation-settings.
func GetTranslationSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Translation.Get())
	}
}

// UpdateTranslationSettings handles update-translation-settings.
func UpdateTranslationSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch settings.TranslationPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		_, dropped := d.Translation.Update(patch)
		if len(dropped) > 0 {
			w.Header().Set("X-Dropped-Fields", strings.Join(dropped, ","))
			d.Logger.Debug("translation update dropped fields",
				logger.String("fields", strings.Join(dropped, ",")))
		}
		accepted(w)
	}
}

// ListReciters returns the fixed reciter catalog.
func ListReciters(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.Reciters())
	}
}

// ListTranslations returns the fixed translation catalog.
func ListTranslations(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.Translations())
	}
}
