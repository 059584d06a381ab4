package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/dutyhq/roster-api/internal/models"
)

const (
	weekdayShiftHours   = 12
	weekendPrimaryHours = 24
)

// slotLabel maps a 0-based slot index to its letter label (a, b, c, ...).
func slotLabel(index int) string {
	if index < 26 {
		return string(rune('a' + index))
	}
	return fmt.Sprintf("%c%c", 'a'+index/26-1, 'a'+index%26)
}

// GenerateSlots expands a date range and per-day shift counts into the flat
// list of unfilled duty slots, day by day, primary slots before secondary.
// Weekend primary shifts run 24 hours; everything else runs 12.
func GenerateSlots(start, end time.Time, primary, secondary int) []models.DutySlot {
	days := DateRange(start, end)
	slots := make([]models.DutySlot, 0, len(days)*(primary+secondary))
	for _, day := range days {
		weekend := IsWeekendNight(day)
		date := DayString(day)
		for i := 0; i < primary; i++ {
			slots = append(slots, newSlot(date, models.RolePrimary, i, weekend))
		}
		for i := 0; i < secondary; i++ {
			slots = append(slots, newSlot(date, models.RoleSecondary, i, weekend))
		}
	}
	return slots
}

func newSlot(date string, role models.Role, index int, weekend bool) models.DutySlot {
	duration := weekdayShiftHours
	if weekend && role == models.RolePrimary {
		duration = weekendPrimaryHours
	}
	label := slotLabel(index)
	return models.DutySlot{
		ID:            fmt.Sprintf("%s-%s-%s", date, role, label),
		Date:          date,
		Role:          role,
		SlotIndex:     index,
		Label:         label,
		Weekend:       weekend,
		DurationHours: duration,
	}
}

// assignmentWeight scores a slot for processing order: hardest-to-fill
// first within each date.
func assignmentWeight(s *models.DutySlot) int {
	weight := 0
	if s.Weekend {
		weight += 10
	}
	if s.Role == models.RolePrimary {
		weight += 5
	}
	return weight
}

// sortForAssignment orders slot indices so the assignment pass fills dates
// in ascending order and, within a date, the heaviest slots first.
func sortForAssignment(slots []models.DutySlot) []int {
	order := make([]int, len(slots))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := &slots[order[a]], &slots[order[b]]
		if sa.Date != sb.Date {
			return sa.Date < sb.Date
		}
		return assignmentWeight(sa) > assignmentWeight(sb)
	})
	return order
}
