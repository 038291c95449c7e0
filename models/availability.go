package models

// Availability holds a professional's configured slot grids, keyed by ISO date.
// Days absent from the map fall back to the default business-hours grid.
type Availability struct {
	ProfessionalID string              `bson:"professionalId" json:"professionalId"`
	Days           map[string][]string `bson:"days" json:"days"` // "2006-01-02" -> ordered slot labels
}

// DayAvailability is the UI-facing projection for a single day.
type DayAvailability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// WeekAvailability is a seven-day window of resolved availability.
type WeekAvailability struct {
	Start string            `json:"start"`
	Days  []DayAvailability `json:"days"`
}
