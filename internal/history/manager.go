// Package history owns the singleton reading position. Every save overwrites
// the previous position wholesale; clearing deletes the backing file.
package history

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/storage"
)

const fileName = "reading-history.json"

type Manager struct {
	mu       sync.Mutex
	progress *domain.ReadingProgress
	store    *storage.Store[domain.ReadingProgress]
	notifier *notify.Notifier
	logger   logger.Logger
	now      func() time.Time
}

func NewManager(dataDir string, notifier *notify.Notifier, log logger.Logger) *Manager {
	store := storage.New[domain.ReadingProgress](filepath.Join(dataDir, fileName), log)
	m := &Manager{
		store:    store,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
	if store.Exists() {
		p := store.Load(domain.ReadingProgress{})
		if p.Valid() {
			m.progress = &p
		}
	}
	return m
}

// SaveProgress records a new reading position. The write is all-or-nothing:
// if any field is non-positive the whole write is discarded, prior state is
// kept and the rejection is only logged, never surfaced to the caller.
func (m *Manager) SaveProgress(surahNumber, ayahNumber, pageNumber int) {
	p := domain.ReadingProgress{
		LastSurah: surahNumber,
		LastAyah:  ayahNumber,
		LastPage:  pageNumber,
		Timestamp: m.now().UnixMilli(),
	}
	if !p.Valid() {
		m.logger.Warn("discarding invalid reading progress",
			logger.Int("surah", surahNumber),
			logger.Int("ayah", ayahNumber),
			logger.Int("page", pageNumber))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = &p
	if err := m.store.Save(p); err != nil {
		m.logger.Error("failed to save reading history", logger.Error(err))
	}
	m.notifier.Publish(notify.ReadingHistoryUpdated, p)
}

// LastProgress returns a copy of the most recent position, or nil when no
// progress has been recorded.
func (m *Manager) LastProgress() *domain.ReadingProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.progress == nil {
		return nil
	}
	p := *m.progress
	return &p
}

// Clear drops the stored position and deletes the backing file. Publishing
// happens regardless of the file outcome; in-memory state is the truth.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = nil
	if err := m.store.Remove(); err != nil {
		m.logger.Error("failed to delete reading history file", logger.Error(err))
	}
	m.notifier.Publish(notify.ReadingHistoryCleared, nil)
}
