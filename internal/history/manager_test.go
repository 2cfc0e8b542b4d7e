package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

func TestLastProgressEmpty(t *testing.T) {
	m, _ := newTestManager(t)
	if got := m.LastProgress(); got != nil {
		t.Errorf("LastProgress() = %+v, want nil before any save", got)
	}
}

func TestSaveProgressRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }

	m.SaveProgress(2, 255, 42)

	p := m.LastProgress()
	if p == nil {
		t.Fatal("LastProgress() = nil after save")
	}
	if p.LastSurah != 2 || p.LastAyah != 255 || p.LastPage != 42 {
		t.Errorf("progress = %+v, want surah=2 ayah=255 page=42", p)
	}
	if p.Timestamp != 1700000000000 {
		t.Errorf("Timestamp = %d, want 1700000000000", p.Timestamp)
	}
}

func TestSaveProgressRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		surah int
		ayah  int
		page  int
	}{
		{"zero surah", 0, 1, 1},
		{"zero ayah", 1, 0, 1},
		{"zero page", 1, 1, 0},
		{"negative surah", -1, 1, 1},
		{"all zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			m.SaveProgress(3, 7, 50) // establish prior state

			m.SaveProgress(tt.surah, tt.ayah, tt.page)

			p := m.LastProgress()
			if p == nil {
				t.Fatal("prior progress was lost")
			}
			if p.LastSurah != 3 || p.LastAyah != 7 || p.LastPage != 50 {
				t.Errorf("invalid save overwrote prior state: %+v", p)
			}
		})
	}
}

func TestClearRemovesFile(t *testing.T) {
	m, dir := newTestManager(t)
	m.SaveProgress(1, 1, 1)

	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("history file missing after save: %v", err)
	}

	m.Clear()

	if m.LastProgress() != nil {
		t.Error("LastProgress() != nil after Clear()")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("history file still present after Clear(): %v", err)
	}

	// clearing again is idempotent
	m.Clear()
}

func TestPersistenceAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	n := notify.New(logger.Nop())
	defer n.Close()

	m1 := NewManager(dir, n, logger.Nop())
	m1.SaveProgress(18, 10, 293)

	m2 := NewManager(dir, n, logger.Nop())
	p := m2.LastProgress()
	if p == nil {
		t.Fatal("reloaded manager has no progress")
	}
	if p.LastSurah != 18 || p.LastAyah != 10 || p.LastPage != 293 {
		t.Errorf("reloaded progress = %+v", p)
	}
}

func TestCorruptFileIgnoredOnStartup(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{{{"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	n := notify.New(logger.Nop())
	defer n.Close()
	m := NewManager(dir, n, logger.Nop())
	if m.LastProgress() != nil {
		t.Error("corrupt history file produced progress")
	}
}

func TestSaveAndClearPublish(t *testing.T) {
	dir := t.TempDir()
	n := notify.New(logger.Nop())
	defer n.Close()
	m := NewManager(dir, n, logger.Nop())

	ch, unsub := n.Subscribe(notify.ReadingHistoryUpdated, notify.ReadingHistoryCleared)
	defer unsub()

	m.SaveProgress(0, 0, 0) // invalid: must not publish
	m.SaveProgress(1, 2, 3)
	m.Clear()

	want := []notify.Channel{notify.ReadingHistoryUpdated, notify.ReadingHistoryCleared}
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
