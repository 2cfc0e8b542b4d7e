package domain

// Bookmark marks a single ayah the user wants to return to. The surah name
// and verse text are denormalized snapshots taken at creation time; they are
// never re-validated or re-fetched afterwards.
type Bookmark struct {
	// ID is the canonical unique identifier, assigned at creation.
	ID string `json:"id"`

	// SurahNumber and AyahNumber identify the verse (both 1-based).
	SurahNumber int `json:"surahNumber"`
	AyahNumber  int `json:"ayahNumber"`

	// SurahName is the display name captured when the bookmark was made.
	SurahName string `json:"surahName"`

	// Text is the verse text at bookmark time.
	Text string `json:"text"`

	// Timestamp is the creation time in milliseconds since epoch.
	Timestamp int64 `json:"timestamp"`

	// Note is optional free text; the only field mutable after creation.
	Note string `json:"note,omitempty"`
}

// BookmarkDraft is the caller-supplied portion of a bookmark. ID and
// Timestamp are assigned by the store.
type BookmarkDraft struct {
	SurahNumber int    `json:"surahNumber"`
	AyahNumber  int    `json:"ayahNumber"`
	SurahName   string `json:"surahName"`
	Text        string `json:"text"`
	Note        string `json:"note,omitempty"`
}
