package models

// LoadRecord tracks one person's shift counts per category plus total duty
// hours. Mutated exactly once per slot move.
type LoadRecord struct {
	Counts     map[ShiftCategory]int `json:"counts"`
	TotalHours int                   `json:"total_hours"`
}

// NewLoadRecord returns a zeroed load record.
func NewLoadRecord() *LoadRecord {
	counts := make(map[ShiftCategory]int, len(AllCategories))
	for _, cat := range AllCategories {
		counts[cat] = 0
	}
	return &LoadRecord{Counts: counts}
}

// TotalShifts sums the four category counters.
func (r *LoadRecord) TotalShifts() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// CategoryTarget is the fair min/max shift count for one category, derived
// from slot totals and headcount. Read-only once computed for a run.
type CategoryTarget struct {
	Total int `json:"total"`
	Min   int `json:"min"`
	Max   int `json:"max"`
}
