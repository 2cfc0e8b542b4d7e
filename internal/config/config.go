package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr      string        // ex: "127.0.0.1:5124"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir string // directory holding bookmarks.json and the settings files

	// Trusted UI surfaces. Commands and queries are rejected unless they
	// originate from one of these.
	DevMode   bool   // true => additionally allow DevOrigin
	DevOrigin string // dev server origin (ex: "http://localhost:5123")
	UIOrigin  string // exact production UI origin

	// External REST APIs (read-only collaborators).
	QuranAPIBase  string        // alquran.cloud style API
	PrayerAPIBase string        // aladhan style API (timings + hijri)
	GeocodeBase   string        // nominatim style reverse geocoding
	APITimeout    time.Duration // per-request timeout for external calls
	APIRetries    uint          // retry attempts for transient API failures
	CacheTTL      time.Duration // TTL for cached API responses

	ImportantDatesFile string // optional YAML override for the Islamic dates table

	// Prayer watcher (optional, enabled when coordinates are configured).
	Latitude       float64
	Longitude      float64
	PrayerMethod   int           // calculation method id passed to the prayer API
	PrayerInterval time.Duration // how often today's timings are refreshed
	PrayerLead     time.Duration // announce a prayer this long before its time

	// Redis (optional API response cache; empty addr = in-memory cache)
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RedisDB       int
	RedisDT       time.Duration // dial timeout
	RedisRT       time.Duration // read timeout
	RedisWT       time.Duration // write timeout
	RedisPoolSize int
}

func Load() *Config {
	return &Config{
		ListenAddr:      getenv("QURAN_LISTEN_ADDR", "127.0.0.1:5124"),
		ShutdownTimeout: mustDuration("QURAN_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("QURAN_LOG_LEVEL", "info"),
		PrettyLog: mustBool("QURAN_PRETTY_LOG", true),

		DataDir: getenv("QURAN_DATA_DIR", defaultDataDir()),

		DevMode:   mustBool("QURAN_DEV", false),
		DevOrigin: getenv("QURAN_DEV_ORIGIN", "http://localhost:5123"),
		UIOrigin:  getenv("QURAN_UI_ORIGIN", "app://quran-pak"),

		QuranAPIBase:  getenv("QURAN_API_BASE", "https://api.alquran.cloud/v1"),
		PrayerAPIBase: getenv("QURAN_PRAYER_API_BASE", "https://api.aladhan.com/v1"),
		GeocodeBase:   getenv("QURAN_GEOCODE_BASE", "https://nominatim.openstreetmap.org"),
		APITimeout:    mustDuration("QURAN_API_TIMEOUT", 15*time.Second),
		APIRetries:    uint(getenvInt("QURAN_API_RETRIES", 3)),
		CacheTTL:      mustDuration("QURAN_CACHE_TTL", 12*time.Hour),

		ImportantDatesFile: getenv("QURAN_IMPORTANT_DATES_FILE", ""),

		Latitude:       mustFloat("QURAN_LATITUDE", 0),
		Longitude:      mustFloat("QURAN_LONGITUDE", 0),
		PrayerMethod:   getenvInt("QURAN_PRAYER_METHOD", 2),
		PrayerInterval: mustDuration("QURAN_PRAYER_INTERVAL", time.Minute),
		PrayerLead:     mustDuration("QURAN_PRAYER_LEAD", 10*time.Minute),

		RedisAddr:     getenv("QURAN_REDIS_ADDR", ""),
		RedisUser:     getenv("QURAN_REDIS_USERNAME", "default"),
		RedisPassword: getenv("QURAN_REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("QURAN_REDIS_DB", 0),
		RedisDT:       mustDuration("QURAN_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:       mustDuration("QURAN_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:       mustDuration("QURAN_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize: getenvInt("QURAN_REDIS_POOL_SIZE", 10),
	}
}

// HasLocation reports whether coordinates were configured for the prayer
// watcher. (0,0) is treated as "not set".
func (c *Config) HasLocation() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "quran-pak")
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
