package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyhq/roster-api/internal/models"
)

func TestGenerateSlotsCountsAndOrder(t *testing.T) {
	// Monday through Wednesday, 2 primary + 1 secondary per day.
	start, _ := ParseDay("2025-03-10")
	end, _ := ParseDay("2025-03-12")

	slots := GenerateSlots(start, end, 2, 1)
	require.Len(t, slots, 9)

	assert.Equal(t, "2025-03-10", slots[0].Date)
	assert.Equal(t, models.RolePrimary, slots[0].Role)
	assert.Equal(t, "a", slots[0].Label)
	assert.Equal(t, models.RolePrimary, slots[1].Role)
	assert.Equal(t, "b", slots[1].Label)
	assert.Equal(t, models.RoleSecondary, slots[2].Role)
	assert.Equal(t, "2025-03-10-secondary-a", slots[2].ID)
}

func TestGenerateSlotsDurations(t *testing.T) {
	// 2025-03-07 is a Friday.
	friday, _ := ParseDay("2025-03-07")
	sunday, _ := ParseDay("2025-03-09")

	slots := GenerateSlots(friday, sunday, 1, 1)
	require.Len(t, slots, 6)

	byID := make(map[string]models.DutySlot)
	for _, s := range slots {
		byID[s.ID] = s
	}

	assert.Equal(t, 24, byID["2025-03-07-primary-a"].DurationHours)
	assert.Equal(t, 12, byID["2025-03-07-secondary-a"].DurationHours)
	assert.Equal(t, 24, byID["2025-03-08-primary-a"].DurationHours)
	assert.Equal(t, 12, byID["2025-03-09-primary-a"].DurationHours)
	assert.True(t, byID["2025-03-08-primary-a"].Weekend)
	assert.False(t, byID["2025-03-09-primary-a"].Weekend)
}

func TestGenerateSlotsZeroCounts(t *testing.T) {
	start, _ := ParseDay("2025-03-10")
	end, _ := ParseDay("2025-03-12")
	assert.Empty(t, GenerateSlots(start, end, 0, 0))
}

func TestSlotLabelBeyondAlphabet(t *testing.T) {
	assert.Equal(t, "a", slotLabel(0))
	assert.Equal(t, "z", slotLabel(25))
	assert.Equal(t, "aa", slotLabel(26))
	assert.Equal(t, "ab", slotLabel(27))
}

func TestSlotCategory(t *testing.T) {
	friday, _ := ParseDay("2025-03-07")
	monday, _ := ParseDay("2025-03-10")

	weekend := GenerateSlots(friday, friday, 1, 1)
	weekday := GenerateSlots(monday, monday, 1, 1)

	assert.Equal(t, models.CategoryWeekendPrimary, weekend[0].Category())
	assert.Equal(t, models.CategoryWeekendSecondary, weekend[1].Category())
	assert.Equal(t, models.CategoryWeekdayPrimary, weekday[0].Category())
	assert.Equal(t, models.CategoryWeekdaySecondary, weekday[1].Category())
}

func TestSortForAssignmentDateThenWeight(t *testing.T) {
	// Friday then Saturday, so weekend weighting applies to both days.
	friday, _ := ParseDay("2025-03-07")
	saturday, _ := ParseDay("2025-03-08")

	slots := GenerateSlots(friday, saturday, 1, 1)
	order := sortForAssignment(slots)
	require.Len(t, order, 4)

	first := slots[order[0]]
	second := slots[order[1]]
	third := slots[order[2]]

	assert.Equal(t, "2025-03-07", first.Date)
	assert.Equal(t, models.RolePrimary, first.Role)
	assert.Equal(t, models.RoleSecondary, second.Role)
	assert.Equal(t, "2025-03-08", third.Date)
}
