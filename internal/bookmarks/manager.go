// Package bookmarks owns the ordered bookmark collection: CRUD over
// uniquely-identified records, persisted as bookmarks.json and announced on
// the notifier one event per mutation.
package bookmarks

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/storage"
)

const fileName = "bookmarks.json"

// Manager is the authoritative bookmark store. The in-memory list is the
// source of truth; disk writes are best-effort and a failed save is logged,
// not surfaced (the on-disk copy may lag for the rest of the process life).
type Manager struct {
	mu       sync.Mutex
	items    []domain.Bookmark
	store    *storage.Store[[]domain.Bookmark]
	notifier *notify.Notifier
	logger   logger.Logger
	now      func() time.Time
}

func NewManager(dataDir string, notifier *notify.Notifier, log logger.Logger) *Manager {
	store := storage.New[[]domain.Bookmark](filepath.Join(dataDir, fileName), log)
	m := &Manager{
		store:    store,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
	m.items = store.Load(nil)
	return m
}

// Add assigns a fresh id and timestamp, prepends the bookmark (newest first),
// persists and publishes bookmark-added. The stored record is returned.
func (m *Manager) Add(draft domain.BookmarkDraft) domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := domain.Bookmark{
		ID:          uuid.NewString(),
		SurahNumber: draft.SurahNumber,
		AyahNumber:  draft.AyahNumber,
		SurahName:   draft.SurahName,
		Text:        draft.Text,
		Note:        draft.Note,
		Timestamp:   m.now().UnixMilli(),
	}
	m.items = append([]domain.Bookmark{b}, m.items...)
	m.persist()
	m.notifier.Publish(notify.BookmarkAdded, b)
	return b
}

// Remove deletes the first bookmark with the given id. Returns the removed
// record, or nil when no bookmark matched; nothing is persisted or published
// for a miss.
func (m *Manager) Remove(id string) *domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			removed := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist()
			m.notifier.Publish(notify.BookmarkRemoved, removed.ID)
			return &removed
		}
	}
	return nil
}

// UpdateNote replaces the note of an existing bookmark; every other field is
// left untouched. Returns the updated record, or nil when the id is unknown.
func (m *Manager) UpdateNote(id, note string) *domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Note = note
			updated := m.items[i]
			m.persist()
			m.notifier.Publish(notify.BookmarkUpdated, updated)
			return &updated
		}
	}
	return nil
}

// All returns a defensive copy of the collection, newest first.
func (m *Manager) All() []domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Bookmark, len(m.items))
	copy(out, m.items)
	return out
}

// BySurah returns a defensive copy of the bookmarks for one surah.
func (m *Manager) BySurah(surahNumber int) []domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Bookmark, 0)
	for _, b := range m.items {
		if b.SurahNumber == surahNumber {
			out = append(out, b)
		}
	}
	return out
}

// ByID returns a copy of one bookmark, or nil when the id is unknown.
func (m *Manager) ByID(id string) *domain.Bookmark {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			b := m.items[i]
			return &b
		}
	}
	return nil
}

// Clear empties the collection, persists and publishes bookmarks-cleared.
// Clearing an already-empty collection is a no-op on disk state but still
// publishes, matching the idempotent clear semantics.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.persist()
	m.notifier.Publish(notify.BookmarksCleared, nil)
}

func (m *Manager) persist() {
	items := m.items
	if items == nil {
		// keep bookmarks.json a JSON array even when empty
		items = []domain.Bookmark{}
	}
	if err := m.store.Save(items); err != nil {
		m.logger.Error("failed to save bookmarks",
			logger.Int("count", len(m.items)),
			logger.Error(err))
	}
}
