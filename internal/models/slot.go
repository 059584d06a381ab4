package models

// Role is one of the two duty role classes scheduled each day.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
)

// ShiftCategory partitions slots into {weekday,weekend} x {primary,secondary}.
// All fairness bookkeeping is keyed by this partition, never by role alone.
type ShiftCategory string

const (
	CategoryWeekdayPrimary   ShiftCategory = "weekday_primary"
	CategoryWeekdaySecondary ShiftCategory = "weekday_secondary"
	CategoryWeekendPrimary   ShiftCategory = "weekend_primary"
	CategoryWeekendSecondary ShiftCategory = "weekend_secondary"
)

// AllCategories lists the four shift-type categories in stable order.
var AllCategories = []ShiftCategory{
	CategoryWeekdayPrimary,
	CategoryWeekdaySecondary,
	CategoryWeekendPrimary,
	CategoryWeekendSecondary,
}

// CategoryOf maps a role and weekend flag onto a shift category.
func CategoryOf(role Role, weekend bool) ShiftCategory {
	if weekend {
		if role == RolePrimary {
			return CategoryWeekendPrimary
		}
		return CategoryWeekendSecondary
	}
	if role == RolePrimary {
		return CategoryWeekdayPrimary
	}
	return CategoryWeekdaySecondary
}

// DutySlot is one fillable duty assignment for one role, one day, one
// position index. ID is deterministic: "<date>-<role>-<label>".
type DutySlot struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	Role             Role   `json:"role"`
	SlotIndex        int    `json:"slot_index"`
	Label            string `json:"label"`
	Weekend          bool   `json:"weekend"`
	DurationHours    int    `json:"duration_hours"`
	Assignee         string `json:"assignee"`
	CoverageOverride bool   `json:"coverage_override,omitempty"`
}

// Category returns the slot's shift-type category.
func (s *DutySlot) Category() ShiftCategory {
	return CategoryOf(s.Role, s.Weekend)
}
