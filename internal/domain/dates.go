package domain

// ImportantDate is a recurring date in the Islamic (Hijri) calendar.
type ImportantDate struct {
	Month int    `json:"month" yaml:"month"` // hijri month, 1-12
	Day   int    `json:"day" yaml:"day"`     // hijri day of month
	Name  string `json:"name" yaml:"name"`
}

var importantDates = []ImportantDate{
	{Month: 1, Day: 1, Name: "Islamic New Year"},
	{Month: 1, Day: 10, Name: "Day of Ashura"},
	{Month: 3, Day: 12, Name: "Mawlid al-Nabi"},
	{Month: 7, Day: 27, Name: "Isra and Mi'raj"},
	{Month: 9, Day: 1, Name: "First day of Ramadan"},
	{Month: 9, Day: 27, Name: "Laylat al-Qadr"},
	{Month: 10, Day: 1, Name: "Eid al-Fitr"},
	{Month: 12, Day: 10, Name: "Eid al-Adha"},
}

// ImportantDates returns a copy of the built-in Islamic dates table.
func ImportantDates() []ImportantDate {
	out := make([]ImportantDate, len(importantDates))
	copy(out, importantDates)
	return out
}
