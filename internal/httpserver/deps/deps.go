package deps

import (
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/bookmarks"
	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/geocode"
	"github.com/sulemanahsancui/quran-pak/internal/history"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/mw"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/playback"
	"github.com/sulemanahsancui/quran-pak/internal/prayerapi"
	"github.com/sulemanahsancui/quran-pak/internal/quranapi"
	"github.com/sulemanahsancui/quran-pak/internal/settings"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	// Authoritative state managers (single writer each).
	Bookmarks   *bookmarks.Manager
	History     *history.Manager
	Recitation  *settings.RecitationManager
	Translation *settings.TranslationManager
	Playback    *playback.Controller
	Notifier    *notify.Notifier

	// External REST collaborators (read-only proxies).
	Quran   *quranapi.Client
	Prayer  *prayerapi.Client
	Geocode *geocode.Client

	ImportantDates []domain.ImportantDate

	// Location defaults used when a timings query carries no coordinates.
	DefaultLatitude  float64
	DefaultLongitude float64
	PrayerMethod     int

	// Manual refresh trigger for the prayer watcher (nil when disabled).
	PrayerRefreshTrigger chan struct{}

	// Trust boundary for every /api route.
	OriginGate *mw.OriginGate
}
