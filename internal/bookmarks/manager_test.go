package bookmarks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	n := notify.New(logger.Nop())
	t.Cleanup(n.Close)
	return NewManager(dir, n, logger.Nop()), dir
}

func TestAddAssignsIDAndTimestamp(t *testing.T) {
	m, _ := newTestManager(t)
	m.now = func() time.Time { return time.UnixMilli(1712345678901) }

	b := m.Add(domain.BookmarkDraft{
		SurahNumber: 2,
		AyahNumber:  255,
		SurahName:   "Al-Baqarah",
		Text:        "Allahu la ilaha illa huwa...",
	})

	if b.ID == "" {
		t.Error("Add() returned empty id")
	}
	if b.Timestamp != 1712345678901 {
		t.Errorf("Timestamp = %d, want 1712345678901", b.Timestamp)
	}
	if b.SurahNumber != 2 || b.AyahNumber != 255 {
		t.Errorf("stored reference = %d:%d, want 2:255", b.SurahNumber, b.AyahNumber)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	m, _ := newTestManager(t)

	first := m.Add(domain.BookmarkDraft{SurahNumber: 1, AyahNumber: 1})
	second := m.Add(domain.BookmarkDraft{SurahNumber: 1, AyahNumber: 2})

	all := m.All()
	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("All()[0].ID = %q, want newest %q", all[0].ID, second.ID)
	}
	if all[1].ID != first.ID {
		t.Errorf("All()[1].ID = %q, want oldest %q", all[1].ID, first.ID)
	}
}

func TestAddUniqueIDs(t *testing.T) {
	m, _ := newTestManager(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b := m.Add(domain.BookmarkDraft{SurahNumber: 1, AyahNumber: i + 1})
		if seen[b.ID] {
			t.Fatalf("duplicate id %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestRemove(t *testing.T) {
	m, _ := newTestManager(t)
	b := m.Add(domain.BookmarkDraft{SurahNumber: 3, AyahNumber: 4})

	removed := m.Remove(b.ID)
	if removed == nil || removed.ID != b.ID {
		t.Fatalf("Remove() = %v, want record %q", removed, b.ID)
	}
	if got := len(m.All()); got != 0 {
		t.Errorf("len(All()) after remove = %d, want 0", got)
	}

	if again := m.Remove(b.ID); again != nil {
		t.Errorf("Remove() of unknown id = %v, want nil", again)
	}
}

func TestUpdateNote(t *testing.T) {
	m, _ := newTestManager(t)
	b := m.Add(domain.BookmarkDraft{SurahNumber: 18, AyahNumber: 10, Text: "ayah text"})

	updated := m.UpdateNote(b.ID, "reflect on this")
	if updated == nil {
		t.Fatal("UpdateNote() = nil for existing id")
	}
	if updated.Note != "reflect on this" {
		t.Errorf("Note = %q, want %q", updated.Note, "reflect on this")
	}
	if updated.Text != b.Text || updated.Timestamp != b.Timestamp {
		t.Error("UpdateNote() modified fields other than the note")
	}

	if m.UpdateNote("no-such-id", "x") != nil {
		t.Error("UpdateNote() of unknown id should return nil")
	}
}

func TestBySurah(t *testing.T) {
	m, _ := newTestManager(t)
	m.Add(domain.BookmarkDraft{SurahNumber: 2, AyahNumber: 1})
	m.Add(domain.BookmarkDraft{SurahNumber: 36, AyahNumber: 1})
	m.Add(domain.BookmarkDraft{SurahNumber: 2, AyahNumber: 255})

	got := m.BySurah(2)
	if len(got) != 2 {
		t.Fatalf("len(BySurah(2)) = %d, want 2", len(got))
	}
	for _, b := range got {
		if b.SurahNumber != 2 {
			t.Errorf("BySurah(2) returned bookmark for surah %d", b.SurahNumber)
		}
	}

	if empty := m.BySurah(114); len(empty) != 0 {
		t.Errorf("BySurah(114) = %v, want empty", empty)
	}
}

func TestClearPersistsEmptyArray(t *testing.T) {
	m, dir := newTestManager(t)
	m.Add(domain.BookmarkDraft{SurahNumber: 1, AyahNumber: 1})
	m.Clear()

	if got := len(m.All()); got != 0 {
		t.Fatalf("len(All()) after Clear() = %d, want 0", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		t.Fatalf("failed to read persisted file: %v", err)
	}
	var stored []domain.Bookmark
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("persisted file is not a JSON array: %v\n%s", err, data)
	}
	if len(stored) != 0 {
		t.Errorf("persisted collection = %v, want empty array", stored)
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	n := notify.New(logger.Nop())
	defer n.Close()

	m1 := NewManager(dir, n, logger.Nop())
	b := m1.Add(domain.BookmarkDraft{SurahNumber: 67, AyahNumber: 1, SurahName: "Al-Mulk"})

	m2 := NewManager(dir, n, logger.Nop())
	all := m2.All()
	if len(all) != 1 {
		t.Fatalf("reloaded collection has %d items, want 1", len(all))
	}
	if all[0].ID != b.ID || all[0].SurahName != "Al-Mulk" {
		t.Errorf("reloaded bookmark = %+v, want %+v", all[0], b)
	}
}

func TestMutationsPublishEvents(t *testing.T) {
	dir := t.TempDir()
	n := notify.New(logger.Nop())
	defer n.Close()
	m := NewManager(dir, n, logger.Nop())

	ch, unsub := n.Subscribe()
	defer unsub()

	b := m.Add(domain.BookmarkDraft{SurahNumber: 1, AyahNumber: 1})
	m.UpdateNote(b.ID, "note")
	m.Remove(b.ID)
	m.Clear()

	want := []notify.Channel{
		notify.BookmarkAdded,
		notify.BookmarkUpdated,
		notify.BookmarkRemoved,
		notify.BookmarksCleared,
	}
	for _, w := range want {
		select {
		case ev := <-ch:
			if ev.Channel != w {
				t.Errorf("event = %q, want %q", ev.Channel, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", w)
		}
	}
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	m, _ := newTestManager(t)
	m.Add(domain.BookmarkDraft{SurahNumber: 1, AyahNumber: 1})

	out := m.All()
	out[0].Note = "mutated by caller"

	if m.All()[0].Note == "mutated by caller" {
		t.Error("All() exposed internal state to the caller")
	}
}
