package models

// PersonReport is the per-person slice of a fairness report.
type PersonReport struct {
	Name              string                `json:"name"`
	Email             string                `json:"email"`
	Counts            map[ShiftCategory]int `json:"counts"`
	TotalShifts       int                   `json:"total_shifts"`
	TotalHours        int                   `json:"total_hours"`
	PreferredHits     int                   `json:"preferred_hits"`
	NeutralHits       int                   `json:"neutral_hits"`
	NotPreferredHits  int                   `json:"not_preferred_hits"`
	CoverageOverrides int                   `json:"coverage_overrides"`
}

// FairnessReport is a read-only snapshot of how evenly a generated schedule
// spreads load across the roster. Score is 0-100; 100 means every category
// is perfectly uniform across people.
type FairnessReport struct {
	People   []PersonReport                   `json:"people"`
	Averages map[ShiftCategory]float64        `json:"averages"`
	Targets  map[ShiftCategory]CategoryTarget `json:"targets"`
	Score    int                              `json:"score"`
	Warnings []string                         `json:"warnings,omitempty"`
}
