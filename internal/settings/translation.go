package settings

import (
	"path/filepath"
	"sync"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/storage"
)

const translationFile = "translation-settings.json"

// TranslationPatch is a partial update; nil fields are left unchanged.
// SecondaryTranslation set to the empty string clears the secondary
// translation (the JSON wire format cannot distinguish null from absent on a
// pointer field).
type TranslationPatch struct {
	PrimaryTranslation   *string  `json:"primaryTranslation,omitempty"`
	SecondaryTranslation *string  `json:"secondaryTranslation,omitempty"`
	ShowArabic           *bool    `json:"showArabic,omitempty"`
	ShowTransliteration  *bool    `json:"showTransliteration,omitempty"`
	FontSize             *int     `json:"fontSize,omitempty"`
	LineSpacing          *float64 `json:"lineSpacing,omitempty"`
}

type TranslationManager struct {
	mu       sync.Mutex
	current  domain.TranslationSettings
	store    *storage.Store[domain.TranslationSettings]
	notifier *notify.Notifier
	logger   logger.Logger
}

func NewTranslationManager(dataDir string, notifier *notify.Notifier, log logger.Logger) *TranslationManager {
	store := storage.New[domain.TranslationSettings](filepath.Join(dataDir, translationFile), log)
	return &TranslationManager{
		current:  store.Load(domain.DefaultTranslationSettings()),
		store:    store,
		notifier: notifier,
		logger:   log,
	}
}

// Get returns a copy of the current settings.
func (m *TranslationManager) Get() domain.TranslationSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyLocked()
}

// Update merges the patch into the current settings. Translation ids must
// exist in the fixed catalog or the field is dropped while the rest of the
// patch applies; fontSize and lineSpacing are clamped to their ranges.
// Dropped field names are returned alongside the merged value.
func (m *TranslationManager) Update(patch TranslationPatch) (domain.TranslationSettings, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var dropped []string

	if patch.PrimaryTranslation != nil {
		if domain.TranslationByID(*patch.PrimaryTranslation) != nil {
			m.current.PrimaryTranslation = *patch.PrimaryTranslation
		} else {
			dropped = append(dropped, "primaryTranslation")
			m.logger.Warn("ignoring unknown primary translation",
				logger.String("id", *patch.PrimaryTranslation))
		}
	}
	if patch.SecondaryTranslation != nil {
		switch id := *patch.SecondaryTranslation; {
		case id == "":
			m.current.SecondaryTranslation = nil
		case domain.TranslationByID(id) != nil:
			m.current.SecondaryTranslation = &id
		default:
			dropped = append(dropped, "secondaryTranslation")
			m.logger.Warn("ignoring unknown secondary translation",
				logger.String("id", id))
		}
	}
	if patch.ShowArabic != nil {
		m.current.ShowArabic = *patch.ShowArabic
	}
	if patch.ShowTransliteration != nil {
		m.current.ShowTransliteration = *patch.ShowTransliteration
	}
	if patch.FontSize != nil {
		m.current.FontSize = clampInt(*patch.FontSize, 12, 24)
	}
	if patch.LineSpacing != nil {
		m.current.LineSpacing = clamp(*patch.LineSpacing, 1, 2)
	}

	m.persistAndNotify()
	return m.copyLocked(), dropped
}

// SetPrimaryTranslation delegates to Update with a single-field patch.
func (m *TranslationManager) SetPrimaryTranslation(id string) domain.TranslationSettings {
	s, _ := m.Update(TranslationPatch{PrimaryTranslation: &id})
	return s
}

// SetSecondaryTranslation delegates to Update with a single-field patch;
// the empty string clears the secondary translation.
func (m *TranslationManager) SetSecondaryTranslation(id string) domain.TranslationSettings {
	s, _ := m.Update(TranslationPatch{SecondaryTranslation: &id})
	return s
}

// SetFontSize delegates to Update with a single-field patch.
func (m *TranslationManager) SetFontSize(size int) domain.TranslationSettings {
	s, _ := m.Update(TranslationPatch{FontSize: &size})
	return s
}

// SetLineSpacing delegates to Update with a single-field patch.
func (m *TranslationManager) SetLineSpacing(spacing float64) domain.TranslationSettings {
	s, _ := m.Update(TranslationPatch{LineSpacing: &spacing})
	return s
}

// ToggleArabic flips the Arabic text visibility.
func (m *TranslationManager) ToggleArabic() domain.TranslationSettings {
	m.mu.Lock()
	v := !m.current.ShowArabic
	m.mu.Unlock()
	s, _ := m.Update(TranslationPatch{ShowArabic: &v})
	return s
}

// ToggleTransliteration flips the transliteration visibility.
func (m *TranslationManager) ToggleTransliteration() domain.TranslationSettings {
	m.mu.Lock()
	v := !m.current.ShowTransliteration
	m.mu.Unlock()
	s, _ := m.Update(TranslationPatch{ShowTransliteration: &v})
	return s
}

// PrimaryTranslation resolves the selected catalog entry, falling back to
// the first catalog entry if the stored id no longer resolves.
func (m *TranslationManager) PrimaryTranslation() domain.Translation {
	m.mu.Lock()
	id := m.current.PrimaryTranslation
	m.mu.Unlock()
	if t := domain.TranslationByID(id); t != nil {
		return *t
	}
	return domain.Translations()[0]
}

// SecondaryTranslation resolves the secondary catalog entry, or nil when no
// secondary translation is selected.
func (m *TranslationManager) SecondaryTranslation() *domain.Translation {
	m.mu.Lock()
	sel := m.current.SecondaryTranslation
	m.mu.Unlock()
	if sel == nil {
		return nil
	}
	return domain.TranslationByID(*sel)
}

// copyLocked deep-copies current so callers can never alias the stored
// secondary-translation pointer. Callers must hold m.mu.
func (m *TranslationManager) copyLocked() domain.TranslationSettings {
	out := m.current
	if m.current.SecondaryTranslation != nil {
		id := *m.current.SecondaryTranslation
		out.SecondaryTranslation = &id
	}
	return out
}

func (m *TranslationManager) persistAndNotify() {
	if err := m.store.Save(m.current); err != nil {
		m.logger.Error("failed to save translation settings", logger.Error(err))
	}
	m.notifier.Publish(notify.TranslationSettingsUpdated, m.copyLocked())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
