package scheduler

import (
	"fmt"
	"time"

	"github.com/dutyhq/roster-api/internal/models"
)

// shiftStartHour is the clock hour every duty shift begins at.
const shiftStartHour = 20

// UnassignedSentinel renders slots that carry no assignee.
const UnassignedSentinel = "UNASSIGNED"

// ProjectCalendar maps a run's slots into clock-time display events,
// optionally filtered by assignee email and role. Shifts start at 8PM;
// 24-hour weekend primary shifts end the following evening, all other
// shifts end the following morning.
func ProjectCalendar(run *models.ScheduleRun, filter models.CalendarFilter) []models.DutyCalendarEvent {
	events := make([]models.DutyCalendarEvent, 0, len(run.Schedule))
	for i := range run.Schedule {
		slot := &run.Schedule[i]
		if filter.PersonEmail != "" && slot.Assignee != filter.PersonEmail {
			continue
		}
		if filter.Role != "" && slot.Role != filter.Role {
			continue
		}
		day, err := ParseDay(slot.Date)
		if err != nil {
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), shiftStartHour, 0, 0, 0, day.Location())
		assignee := slot.Assignee
		if assignee == "" {
			assignee = UnassignedSentinel
		}
		events = append(events, models.DutyCalendarEvent{
			SlotID:           slot.ID,
			Title:            fmt.Sprintf("%s %s: %s", slot.Role, slot.Label, assignee),
			Role:             slot.Role,
			Assignee:         slot.Assignee,
			Start:            start,
			End:              start.Add(time.Duration(slot.DurationHours) * time.Hour),
			CoverageOverride: slot.CoverageOverride,
		})
	}
	return events
}
