package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// GetPrayerTimings proxies today's prayer timings. Coordinates come from
// ?lat=&lon= or fall back to the configured location; ?date=DD-MM-YYYY
// selects a different day.
func GetPrayerTimings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, lon, ok := coordinates(r, d)
		if !ok {
			writeError(w, http.StatusBadRequest, "no coordinates given or configured")
			return
		}

		date := d.TimeNow()
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.ParseInLocation("02-01-2006", raw, date.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid date, want DD-MM-YYYY")
				return
			}
			date = parsed
		}

		timings, err := d.Prayer.GetTimings(r.Context(), date, lat, lon, d.PrayerMethod)
		if err != nil {
			d.Logger.Error("timings fetch failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "prayer api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, timings)
	}
}

// GetHijriDate converts today (or ?date=DD-MM-YYYY) to the Hijri calendar.
func GetHijriDate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := d.TimeNow()
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.ParseInLocation("02-01-2006", raw, date.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid date, want DD-MM-YYYY")
				return
			}
			date = parsed
		}

		hijri, err := d.Prayer.GToH(r.Context(), date)
		if err != nil {
			d.Logger.Error("hijri conversion failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "calendar api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, hijri)
	}
}

// ListImportantDates returns the Islamic dates table.
func ListImportantDates(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.ImportantDates)
	}
}

// ResolveLocation reverse-geocodes ?lat=&lon= (or the configured location)
// to a displayable city and country.
func ResolveLocation(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, lon, ok := coordinates(r, d)
		if !ok {
			writeError(w, http.StatusBadRequest, "no coordinates given or configured")
			return
		}
		loc, err := d.Geocode.Reverse(r.Context(), lat, lon)
		if err != nil {
			d.Logger.Error("reverse geocoding failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "geocoding api unavailable")
			return
		}
		writeJSON(w, http.StatusOK, loc)
	}
}

// RefreshPrayerWatch triggers an immediate prayer-timings refresh, mirroring
// the manual reload endpoints of the background loops.
func RefreshPrayerWatch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.PrayerRefreshTrigger == nil {
			writeError(w, http.StatusConflict, "prayer watcher disabled")
			return
		}
		select {
		case d.PrayerRefreshTrigger <- struct{}{}:
			d.Logger.Info("manual prayer refresh triggered",
				logger.String("remote_ip", r.RemoteAddr))
			accepted(w)
		default:
			writeError(w, http.StatusTooManyRequests, "refresh already in progress")
		}
	}
}

// coordinates pulls lat/lon from the query, falling back to the configured
// location. ok is false when neither is available.
func coordinates(r *http.Request, d deps.Deps) (lat, lon float64, ok bool) {
	rawLat := r.URL.Query().Get("lat")
	rawLon := r.URL.Query().Get("lon")
	if rawLat != "" && rawLon != "" {
		lat, errLat := strconv.ParseFloat(rawLat, 64)
		lon, errLon := strconv.ParseFloat(rawLon, 64)
		if errLat == nil && errLon == nil {
			return lat, lon, true
		}
		return 0, 0, false
	}
	if d.DefaultLatitude != 0 || d.DefaultLongitude != 0 {
		return d.DefaultLatitude, d.DefaultLongitude, true
	}
	return 0, 0, false
}
