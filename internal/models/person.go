package models

// Person is a roster member eligible for duty assignment. Email is the
// unique key; callers lowercase/trim before adding.
type Person struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PreferenceSet holds per-person date preferences as canonical day strings
// (YYYY-MM-DD). A date absent from both sets is neutral. The two sets are
// disjoint; SetPreferences rejects overlaps.
type PreferenceSet struct {
	Preferred    map[string]bool `json:"preferred"`
	NotPreferred map[string]bool `json:"not_preferred"`
}

// NewPreferenceSet builds an empty preference set.
func NewPreferenceSet() PreferenceSet {
	return PreferenceSet{
		Preferred:    make(map[string]bool),
		NotPreferred: make(map[string]bool),
	}
}
