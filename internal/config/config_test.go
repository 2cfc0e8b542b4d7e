package config

import (
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   string
		want  string
	}{
		{"set", "custom", "fallback", "custom"},
		{"unset", "", "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("QURAN_TEST_VAR", tt.value)
			}
			if got := getenv("QURAN_TEST_VAR", tt.def); got != tt.want {
				t.Errorf("getenv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"invalid falls back", "not-a-number", 7},
		{"unset falls back", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("QURAN_TEST_INT", tt.value)
			}
			if got := getenvInt("QURAN_TEST_INT", 7); got != tt.want {
				t.Errorf("getenvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{"true", "true", false, true},
		{"numeric true", "1", false, true},
		{"false", "false", true, false},
		{"invalid falls back", "yep", false, false},
		{"unset falls back", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("QURAN_TEST_BOOL", tt.value)
			}
			if got := mustBool("QURAN_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("mustBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustFloat(t *testing.T) {
	t.Setenv("QURAN_TEST_FLOAT", "24.8607")
	if got := mustFloat("QURAN_TEST_FLOAT", 0); got != 24.8607 {
		t.Errorf("mustFloat() = %v, want 24.8607", got)
	}
	if got := mustFloat("QURAN_TEST_FLOAT_MISSING", 1.5); got != 1.5 {
		t.Errorf("mustFloat() fallback = %v, want 1.5", got)
	}
}

func TestMustDuration(t *testing.T) {
	t.Setenv("QURAN_TEST_DUR", "90s")
	if got := mustDuration("QURAN_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("mustDuration() = %v, want 90s", got)
	}

	t.Setenv("QURAN_TEST_DUR_BAD", "ninety")
	if got := mustDuration("QURAN_TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("mustDuration() fallback = %v, want 1m", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenAddr != "127.0.0.1:5124" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.UIOrigin != "app://quran-pak" {
		t.Errorf("UIOrigin = %q", cfg.UIOrigin)
	}
	if cfg.DevMode {
		t.Error("DevMode = true by default")
	}
	if cfg.DataDir == "" {
		t.Error("DataDir is empty")
	}
	if cfg.APIRetries == 0 {
		t.Error("APIRetries = 0")
	}
}

func TestHasLocation(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"both zero", 0, 0, false},
		{"latitude set", 24.86, 0, true},
		{"longitude set", 0, 67.0, true},
		{"both set", 24.86, 67.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Latitude: tt.lat, Longitude: tt.lon}
			if got := cfg.HasLocation(); got != tt.want {
				t.Errorf("HasLocation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QURAN_LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("QURAN_DEV", "true")
	t.Setenv("QURAN_LATITUDE", "24.8607")
	t.Setenv("QURAN_LONGITUDE", "67.0011")

	cfg := Load()
	if cfg.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if !cfg.DevMode {
		t.Error("DevMode = false with QURAN_DEV=true")
	}
	if !cfg.HasLocation() {
		t.Error("HasLocation() = false with coordinates set")
	}
}
