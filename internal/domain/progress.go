package domain

// ReadingProgress is the single most recent reading position. It is
// overwritten wholesale on every save; no history of past positions is kept.
type ReadingProgress struct {
	LastSurah int   `json:"lastSurah"`
	LastAyah  int   `json:"lastAyah"`
	LastPage  int   `json:"lastPage"`
	Timestamp int64 `json:"timestamp"` // last-write time, ms since epoch
}

// Valid reports whether all three position fields are positive. A progress
// write with any non-positive field is rejected entirely.
func (p ReadingProgress) Valid() bool {
	return p.LastSurah > 0 && p.LastAyah > 0 && p.LastPage > 0
}
