package handlers

import (
	"net/http"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
)

// PlayAyah handles the play-ayah command.
func PlayAyah(d deps.Deps) http.HandlerFunc {
	type body struct {
		SurahNumber int `json:"surahNumber"`
		AyahNumber  int `json:"ayahNumber"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req body
		if !decodeBody(w, r, &req) {
			return
		}
		if req.SurahNumber < 1 || req.AyahNumber < 1 {
			writeError(w, http.StatusBadRequest, "invalid ayah reference")
			return
		}
		d.Playback.PlayAyah(req.SurahNumber, req.AyahNumber)
		accepted(w)
	}
}

// PlaySurah handles the play-surah command.
func PlaySurah(d deps.Deps) http.HandlerFunc {
	type body struct {
		SurahNumber int `json:"surahNumber"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req body
		if !decodeBody(w, r, &req) {
			return
		}
		if req.SurahNumber < 1 {
			writeError(w, http.StatusBadRequest, "invalid surah number")
			return
		}
		d.Playback.PlaySurah(req.SurahNumber)
		accepted(w)
	}
}

// PausePlayback handles pause-playback.
func PausePlayback(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Playback.Pause()
		accepted(w)
	}
}

// ResumePlayback handles resume-playback.
func ResumePlayback(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Playback.Resume()
		accepted(w)
	}
}

// StopPlayback handles stop-playback.
func StopPlayback(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Playback.Stop()
		accepted(w)
	}
}
