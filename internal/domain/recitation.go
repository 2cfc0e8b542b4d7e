package domain

// Reciter is one entry of the fixed recitation catalog. The catalog is
// compiled in and not user-extensible.
type Reciter struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Style    string `json:"style"`
}

var reciters = []Reciter{
	{
		ID:       "mishary_rashid_alafasy",
		Name:     "Mishary Rashid Alafasy",
		Language: "Arabic",
		Style:    "Modern",
	},
	{
		ID:       "abdul_basit",
		Name:     "Abdul Basit",
		Language: "Arabic",
		Style:    "Traditional",
	},
	{
		ID:       "saad_al_ghamdi",
		Name:     "Saad Al-Ghamdi",
		Language: "Arabic",
		Style:    "Modern",
	},
}

// Reciters returns a copy of the reciter catalog.
func Reciters() []Reciter {
	out := make([]Reciter, len(reciters))
	copy(out, reciters)
	return out
}

// ReciterByID looks up a catalog entry. Returns nil when the id is unknown.
func ReciterByID(id string) *Reciter {
	for i := range reciters {
		if reciters[i].ID == id {
			r := reciters[i]
			return &r
		}
	}
	return nil
}

// RecitationSettings is the singleton recitation preference set.
// IsPlaying mirrors playback engine state; the UI cannot set it directly.
type RecitationSettings struct {
	CurrentReciter string  `json:"currentReciter"`
	AutoPlay       bool    `json:"autoPlay"`
	RepeatCount    int     `json:"repeatCount"`
	Volume         float64 `json:"volume"`        // clamped to [0,1]
	PlaybackSpeed  float64 `json:"playbackSpeed"` // clamped to [0.5,2]
	IsPlaying      bool    `json:"isPlaying"`
}

// DefaultRecitationSettings is the value used when no settings file exists.
func DefaultRecitationSettings() RecitationSettings {
	return RecitationSettings{
		CurrentReciter: "mishary_rashid_alafasy",
		AutoPlay:       true,
		RepeatCount:    1,
		Volume:         1.0,
		PlaybackSpeed:  1.0,
	}
}
