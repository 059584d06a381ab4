package models

import "time"

// ScheduleRun is the complete outcome of one scheduling run: the ordered
// slot collection plus the fairness report computed from the final state.
// Each run fully replaces the previous one; slots have no identity beyond
// the run that produced them.
type ScheduleRun struct {
	RunID       string         `json:"run_id"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Primary     int            `json:"primary_per_day"`
	Secondary   int            `json:"secondary_per_day"`
	Schedule    []DutySlot     `json:"schedule"`
	Report      FairnessReport `json:"fairness_report"`
	GeneratedAt time.Time      `json:"generated_at"`
}
