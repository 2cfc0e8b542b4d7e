package mw

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// OriginGate rejects commands and queries that do not originate from a
// recognized UI surface. Only two origins are ever trusted: the dev server
// origin while running in development mode, and the exact production UI
// origin. This is a security boundary, so unlike the stores' data-quality
// fallbacks a violation is a hard failure for the offending request.
type OriginGate struct {
	devMode   bool
	devOrigin string
	uiOrigin  string
	logger    logger.Logger
}

func NewOriginGate(devMode bool, devOrigin, uiOrigin string, log logger.Logger) *OriginGate {
	return &OriginGate{
		devMode:   devMode,
		devOrigin: strings.TrimRight(devOrigin, "/"),
		uiOrigin:  strings.TrimRight(uiOrigin, "/"),
		logger:    log,
	}
}

// Trusted reports whether a request origin may issue commands and queries.
func (g *OriginGate) Trusted(origin string) bool {
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return false
	}
	if g.devMode && origin == g.devOrigin {
		return true
	}
	return origin == g.uiOrigin
}

// Middleware enforces the gate on every request, mutating or not. The
// Origin header is checked first; requests without one (same-surface GETs,
// EventSource in some shells) fall back to the Referer's origin.
func (g *OriginGate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := requestOrigin(r)
			if !g.Trusted(origin) {
				g.logger.Warn("rejected request from untrusted origin",
					logger.String("origin", origin),
					logger.String("path", r.URL.Path),
					logger.String("remote_ip", r.RemoteAddr))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "untrusted origin",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestOrigin extracts the caller's origin from Origin or, failing that,
// from the Referer's scheme://host part.
func requestOrigin(r *http.Request) string {
	if o := r.Header.Get("Origin"); o != "" {
		return o
	}
	ref := r.Header.Get("Referer")
	if ref == "" {
		return ""
	}
	// keep scheme://host of the referer
	idx := strings.Index(ref, "://")
	if idx < 0 {
		return ""
	}
	rest := ref[idx+3:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[:slash]
	}
	return ref[:idx+3] + rest
}
