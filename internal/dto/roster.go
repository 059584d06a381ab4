package dto

// AddPersonRequest registers a roster member.
type AddPersonRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// PreferencesRequest replaces a person's date preferences. Dates accept ISO
// calendar dates or any unambiguous date string.
type PreferencesRequest struct {
	PreferredDates    []string `json:"preferredDates"`
	NotPreferredDates []string `json:"notPreferredDates"`
}

// PreferencesResponse returns the stored canonical date sets.
type PreferencesResponse struct {
	Email             string   `json:"email"`
	PreferredDates    []string `json:"preferredDates"`
	NotPreferredDates []string `json:"notPreferredDates"`
}

// ImportSummary reports the outcome of a CSV preference import. Bad rows
// become warnings, never batch failures.
type ImportSummary struct {
	RowsSeen    int      `json:"rowsSeen"`
	RowsApplied int      `json:"rowsApplied"`
	Warnings    []string `json:"warnings,omitempty"`
}
