// Package settings holds the singleton preference managers. Each manager
// loads defaults or the persisted value at startup, applies field-level
// clamping and catalog validation on update, persists on every mutation and
// publishes the merged value. Invalid fields are dropped silently on the
// wire, but every update reports the dropped field names so a stricter
// caller can detect the correction.
package settings

import (
	"path/filepath"
	"sync"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/storage"
)

const recitationFile = "recitation-settings.json"

// RecitationPatch is a partial update; nil fields are left unchanged.
// IsPlaying is intentionally absent: it mirrors playback engine state and is
// not settable by the UI.
type RecitationPatch struct {
	CurrentReciter *string  `json:"currentReciter,omitempty"`
	AutoPlay       *bool    `json:"autoPlay,omitempty"`
	RepeatCount    *int     `json:"repeatCount,omitempty"`
	Volume         *float64 `json:"volume,omitempty"`
	PlaybackSpeed  *float64 `json:"playbackSpeed,omitempty"`
}

type RecitationManager struct {
	mu       sync.Mutex
	current  domain.RecitationSettings
	store    *storage.Store[domain.RecitationSettings]
	notifier *notify.Notifier
	logger   logger.Logger
}

func NewRecitationManager(dataDir string, notifier *notify.Notifier, log logger.Logger) *RecitationManager {
	store := storage.New[domain.RecitationSettings](filepath.Join(dataDir, recitationFile), log)
	return &RecitationManager{
		current:  store.Load(domain.DefaultRecitationSettings()),
		store:    store,
		notifier: notifier,
		logger:   log,
	}
}

// Get returns a copy of the current settings.
func (m *RecitationManager) Get() domain.RecitationSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Update merges the patch into the current settings, clamping ranges and
// validating the reciter against the catalog. An unknown reciter id drops
// that field while the rest of the patch still applies; dropped field names
// are returned alongside the merged value.
func (m *RecitationManager) Update(patch RecitationPatch) (domain.RecitationSettings, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var dropped []string

	if patch.CurrentReciter != nil {
		if domain.ReciterByID(*patch.CurrentReciter) != nil {
			m.current.CurrentReciter = *patch.CurrentReciter
		} else {
			dropped = append(dropped, "currentReciter")
			m.logger.Warn("ignoring unknown reciter",
				logger.String("id", *patch.CurrentReciter))
		}
	}
	if patch.AutoPlay != nil {
		m.current.AutoPlay = *patch.AutoPlay
	}
	if patch.RepeatCount != nil {
		m.current.RepeatCount = max(*patch.RepeatCount, 0)
	}
	if patch.Volume != nil {
		m.current.Volume = clamp(*patch.Volume, 0, 1)
	}
	if patch.PlaybackSpeed != nil {
		m.current.PlaybackSpeed = clamp(*patch.PlaybackSpeed, 0.5, 2)
	}

	m.persistAndNotify()
	return m.current, dropped
}

// SetPlaying records playback engine state. This is driven by playback
// commands, not by settings patches from the UI.
func (m *RecitationManager) SetPlaying(playing bool) domain.RecitationSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current.IsPlaying == playing {
		return m.current
	}
	m.current.IsPlaying = playing
	m.persistAndNotify()
	return m.current
}

// SetVolume delegates to Update with a single-field patch.
func (m *RecitationManager) SetVolume(volume float64) domain.RecitationSettings {
	s, _ := m.Update(RecitationPatch{Volume: &volume})
	return s
}

// SetPlaybackSpeed delegates to Update with a single-field patch.
func (m *RecitationManager) SetPlaybackSpeed(speed float64) domain.RecitationSettings {
	s, _ := m.Update(RecitationPatch{PlaybackSpeed: &speed})
	return s
}

// SetReciter delegates to Update with a single-field patch.
func (m *RecitationManager) SetReciter(id string) domain.RecitationSettings {
	s, _ := m.Update(RecitationPatch{CurrentReciter: &id})
	return s
}

// CurrentReciter resolves the selected catalog entry, falling back to the
// first catalog entry if the stored id somehow no longer resolves.
func (m *RecitationManager) CurrentReciter() domain.Reciter {
	m.mu.Lock()
	id := m.current.CurrentReciter
	m.mu.Unlock()
	if r := domain.ReciterByID(id); r != nil {
		return *r
	}
	return domain.Reciters()[0]
}

func (m *RecitationManager) persistAndNotify() {
	if err := m.store.Save(m.current); err != nil {
		m.logger.Error("failed to save recitation settings", logger.Error(err))
	}
	m.notifier.Publish(notify.RecitationSettingsUpdated, m.current)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
