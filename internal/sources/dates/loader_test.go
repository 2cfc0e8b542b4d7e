package dates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
)

func TestLoadBuiltInTable(t *testing.T) {
	loader := NewLoader("")
	got, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := domain.ImportantDates()
	if len(got) != len(want) {
		t.Errorf("len = %d, want %d", len(got), len(want))
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dates.yaml")
	content := `---
- month: 9
  day: 1
  name: Start of Ramadan
- month: 10
  day: 1
  name: Eid ul-Fitr
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dates file: %v", err)
	}

	got, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Month != 9 || got[0].Day != 1 || got[0].Name != "Start of Ramadan" {
		t.Errorf("first entry = %+v", got[0])
	}
}

func TestLoadFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/dates.yaml").Load(); err == nil {
		t.Error("Load() with missing file should return error")
	}
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", `{{{`},
		{"empty list", `[]`},
		{"month out of range", "- month: 13\n  day: 1\n  name: X\n"},
		{"day out of range", "- month: 1\n  day: 31\n  name: X\n"},
		{"missing name", "- month: 1\n  day: 1\n  name: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dates.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write dates file: %v", err)
			}
			if _, err := NewLoader(path).Load(); err == nil {
				t.Error("Load() error = nil, want validation error")
			}
		})
	}
}
