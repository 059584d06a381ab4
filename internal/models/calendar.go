package models

import "time"

// DutyCalendarEvent projects a duty slot into a displayable clock-time span.
// Shifts start at 20:00 local; 24h weekend-primary shifts end the following
// evening, all other shifts end the following morning.
type DutyCalendarEvent struct {
	SlotID           string    `json:"slot_id"`
	Title            string    `json:"title"`
	Role             Role      `json:"role"`
	Assignee         string    `json:"assignee"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	CoverageOverride bool      `json:"coverage_override,omitempty"`
}

// CalendarFilter narrows projected events by person and role.
type CalendarFilter struct {
	PersonEmail string
	Role        Role
}
