package domain

// Translation is one entry of the fixed translation catalog.
type Translation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Author   string `json:"author"`
	Source   string `json:"source"`
}

var translations = []Translation{
	{
		ID:       "en_sahih",
		Name:     "Sahih International",
		Language: "English",
		Author:   "Saheeh International",
		Source:   "https://quran.com",
	},
	{
		ID:       "en_pickthall",
		Name:     "Pickthall",
		Language: "English",
		Author:   "Mohammed Marmaduke Pickthall",
		Source:   "https://quran.com",
	},
	{
		ID:       "ur_ahmed_ali",
		Name:     "Ahmed Ali",
		Language: "Urdu",
		Author:   "Ahmed Ali",
		Source:   "https://quran.com",
	},
	{
		ID:       "bn_bengali",
		Name:     "Bengali",
		Language: "Bengali",
		Author:   "Zohurul Hoque",
		Source:   "https://quran.com",
	},
}

// Translations returns a copy of the translation catalog.
func Translations() []Translation {
	out := make([]Translation, len(translations))
	copy(out, translations)
	return out
}

// TranslationByID looks up a catalog entry. Returns nil when the id is unknown.
func TranslationByID(id string) *Translation {
	for i := range translations {
		if translations[i].ID == id {
			t := translations[i]
			return &t
		}
	}
	return nil
}

// TranslationSettings is the singleton translation preference set.
// SecondaryTranslation is nil when no secondary translation is shown.
type TranslationSettings struct {
	PrimaryTranslation   string  `json:"primaryTranslation"`
	SecondaryTranslation *string `json:"secondaryTranslation"`
	ShowArabic           bool    `json:"showArabic"`
	ShowTransliteration  bool    `json:"showTransliteration"`
	FontSize             int     `json:"fontSize"`    // clamped to [12,24]
	LineSpacing          float64 `json:"lineSpacing"` // clamped to [1,2]
}

// DefaultTranslationSettings is the value used when no settings file exists.
func DefaultTranslationSettings() TranslationSettings {
	return TranslationSettings{
		PrimaryTranslation:   "en_sahih",
		SecondaryTranslation: nil,
		ShowArabic:           true,
		ShowTransliteration:  false,
		FontSize:             16,
		LineSpacing:          1.5,
	}
}
