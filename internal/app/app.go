package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sulemanahsancui/quran-pak/internal/bookmarks"
	"github.com/sulemanahsancui/quran-pak/internal/cache"
	"github.com/sulemanahsancui/quran-pak/internal/config"
	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/geocode"
	"github.com/sulemanahsancui/quran-pak/internal/history"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/httpserver/mw"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/playback"
	"github.com/sulemanahsancui/quran-pak/internal/prayerapi"
	"github.com/sulemanahsancui/quran-pak/internal/quranapi"
	"github.com/sulemanahsancui/quran-pak/internal/redis"
	"github.com/sulemanahsancui/quran-pak/internal/scheduler"
	"github.com/sulemanahsancui/quran-pak/internal/settings"
	"github.com/sulemanahsancui/quran-pak/internal/sources/dates"
	"github.com/sulemanahsancui/quran-pak/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	notifier    *notify.Notifier
	redisClient *goredis.Client
	watcher     *scheduler.PrayerWatcher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Optional Redis-backed API cache. The shell falls back to the
	// in-memory cache when Redis is not configured or unreachable.
	var apiCache cache.Cache = cache.NewMemory()
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
			Addr:         cfg.RedisAddr,
			User:         cfg.RedisUser,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  cfg.RedisDT,
			ReadTimeout:  cfg.RedisRT,
			WriteTimeout: cfg.RedisWT,
			PoolSize:     cfg.RedisPoolSize,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, using in-memory cache",
				logger.Error(err))
		} else {
			redisClient = client
			apiCache = cache.NewRedis(client, loggerClient)
		}
	}

	notifier := notify.New(loggerClient)

	// State managers. Each owns one JSON file under DataDir and is the
	// single writer for it.
	bookmarkMgr := bookmarks.NewManager(cfg.DataDir, notifier, loggerClient)
	historyMgr := history.NewManager(cfg.DataDir, notifier, loggerClient)
	recitationMgr := settings.NewRecitationManager(cfg.DataDir, notifier, loggerClient)
	translationMgr := settings.NewTranslationManager(cfg.DataDir, notifier, loggerClient)
	playbackCtl := playback.NewController(recitationMgr, notifier, loggerClient)

	quranClient := quranapi.NewClient(
		cfg.QuranAPIBase, cfg.APITimeout, cfg.APIRetries,
		apiCache, cfg.CacheTTL, loggerClient)
	prayerClient := prayerapi.NewClient(
		cfg.PrayerAPIBase, cfg.APITimeout, cfg.APIRetries,
		apiCache, cfg.CacheTTL, loggerClient)
	geocodeClient := geocode.NewClient(cfg.GeocodeBase, cfg.APITimeout, loggerClient)

	importantDates, err := dates.NewLoader(cfg.ImportantDatesFile).Load()
	if err != nil {
		loggerClient.Warn("failed to load important dates file, using built-in table",
			logger.String("file", cfg.ImportantDatesFile), logger.Error(err))
		importantDates = domain.ImportantDates()
	}

	// Prayer watcher runs only when coordinates are configured.
	var watcher *scheduler.PrayerWatcher
	var refreshTrigger chan struct{}
	if cfg.HasLocation() {
		refreshTrigger = make(chan struct{}, 1)
		watcher = scheduler.NewPrayerWatcher(
			prayerClient,
			notifier,
			loggerClient,
			cfg.Latitude, cfg.Longitude,
			cfg.PrayerMethod,
			cfg.PrayerInterval, cfg.PrayerLead,
			refreshTrigger,
		)
	} else {
		loggerClient.Info("no coordinates configured, prayer watcher disabled")
	}

	originGate := mw.NewOriginGate(cfg.DevMode, cfg.DevOrigin, cfg.UIOrigin, loggerClient)

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,

		Bookmarks:   bookmarkMgr,
		History:     historyMgr,
		Recitation:  recitationMgr,
		Translation: translationMgr,
		Playback:    playbackCtl,
		Notifier:    notifier,

		Quran:   quranClient,
		Prayer:  prayerClient,
		Geocode: geocodeClient,

		ImportantDates: importantDates,

		DefaultLatitude:  cfg.Latitude,
		DefaultLongitude: cfg.Longitude,
		PrayerMethod:     cfg.PrayerMethod,

		PrayerRefreshTrigger: refreshTrigger,

		OriginGate: originGate,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		notifier:    notifier,
		redisClient: redisClient,
		watcher:     watcher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting %s v%s on %s", version.AppName, version.Version, a.cfg.ListenAddr)
	a.logger.Infof("%s %s (commit=%s, built=%s, go=%s)",
		version.AppName, version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("state directory", logger.String("dir", a.cfg.DataDir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.watcher != nil {
		a.watcher.Start(ctx)
		a.logger.Info("prayer watcher started",
			logger.Duration("interval", a.cfg.PrayerInterval),
			logger.Duration("lead", a.cfg.PrayerLead))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.watcher != nil {
		a.watcher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Closing the notifier ends every open event stream.
	a.notifier.Close()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Infof("%s stopped cleanly", version.AppName)
	return nil
}
