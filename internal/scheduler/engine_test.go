package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyhq/roster-api/internal/models"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

func newTestEngine(t *testing.T, headcount int) *Engine {
	t.Helper()
	e := New(Config{}, nil)
	for i := 1; i <= headcount; i++ {
		_, err := e.AddPerson(fmt.Sprintf("Person %d", i), fmt.Sprintf("p%d@example.com", i))
		require.NoError(t, err)
	}
	return e
}

func setRange(t *testing.T, e *Engine, start, end string) {
	t.Helper()
	s, err := ParseDay(start)
	require.NoError(t, err)
	en, err := ParseDay(end)
	require.NoError(t, err)
	e.SetDateRange(s, en)
}

func TestAddPersonAssignsMonotonicIDs(t *testing.T) {
	e := newTestEngine(t, 3)
	people := e.People()
	require.Len(t, people, 3)
	assert.Equal(t, 1, people[0].ID)
	assert.Equal(t, 2, people[1].ID)
	assert.Equal(t, 3, people[2].ID)

	require.NoError(t, e.RemovePerson("p2@example.com"))
	p, err := e.AddPerson("Person 4", "p4@example.com")
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
}

func TestAddPersonRejectsDuplicateEmail(t *testing.T) {
	e := newTestEngine(t, 1)
	_, err := e.AddPerson("Someone Else", "p1@example.com")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRemovePersonUnknown(t *testing.T) {
	e := newTestEngine(t, 1)
	err := e.RemovePerson("ghost@example.com")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSetShiftCountsClamped(t *testing.T) {
	e := New(Config{}, nil)

	e.SetShiftCounts(-3, 99)
	primary, secondary := e.ShiftCounts()
	assert.Equal(t, 0, primary)
	assert.Equal(t, 10, secondary)

	e.SetShiftCounts(2, 1)
	primary, secondary = e.ShiftCounts()
	assert.Equal(t, 2, primary)
	assert.Equal(t, 1, secondary)
}

func TestSetPreferencesCanonicalizesDates(t *testing.T) {
	e := newTestEngine(t, 1)
	err := e.SetPreferences("p1@example.com", []string{"March 7, 2025"}, []string{"3/8/2025"})
	require.NoError(t, err)

	set, err := e.Preferences("p1@example.com")
	require.NoError(t, err)
	assert.True(t, set.Preferred["2025-03-07"])
	assert.True(t, set.NotPreferred["2025-03-08"])
}

func TestSetPreferencesRejectsOverlap(t *testing.T) {
	e := newTestEngine(t, 1)
	err := e.SetPreferences("p1@example.com", []string{"2025-03-07"}, []string{"March 7, 2025"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSetPreferencesUnknownPerson(t *testing.T) {
	e := newTestEngine(t, 1)
	err := e.SetPreferences("ghost@example.com", nil, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSetPreferencesRejectsBadDate(t *testing.T) {
	e := newTestEngine(t, 1)
	err := e.SetPreferences("p1@example.com", []string{"not a date"}, nil)
	require.Error(t, err)
}

func TestGenerateFailsWhenRosterTooSmall(t *testing.T) {
	// 2 primary + 2 secondary per day cannot be covered by 3 people without
	// double-booking, regardless of the date range.
	e := newTestEngine(t, 3)
	e.SetShiftCounts(2, 2)

	_, err := e.Generate()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInsufficientStaff.Code, appErrors.FromError(err).Code)
}

func TestGenerateCapacityCheckedBeforeDateRange(t *testing.T) {
	e := newTestEngine(t, 1)
	e.SetShiftCounts(1, 1)

	_, err := e.Generate()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInsufficientStaff.Code, appErrors.FromError(err).Code)
}

func TestGenerateFailsWithoutDateRange(t *testing.T) {
	e := newTestEngine(t, 5)
	e.SetShiftCounts(1, 1)

	_, err := e.Generate()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}

func TestGenerateEmptyRangeYieldsEmptySchedule(t *testing.T) {
	e := newTestEngine(t, 5)
	e.SetShiftCounts(1, 1)
	setRange(t, e, "2025-03-10", "2025-03-01")

	run, err := e.Generate()
	require.NoError(t, err)
	assert.Empty(t, run.Schedule)
	assert.Equal(t, 100, run.Report.Score)
}

func TestGenerateFullWeekFivePeople(t *testing.T) {
	// One calendar week starting on a Monday: 5 weekday days and the
	// Friday/Saturday weekend pair, 1 primary + 1 secondary per day.
	e := newTestEngine(t, 5)
	e.SetShiftCounts(1, 1)
	setRange(t, e, "2025-03-10", "2025-03-16")

	run, err := e.Generate()
	require.NoError(t, err)
	require.Len(t, run.Schedule, 14)

	assertNoDoubleBooking(t, run.Schedule)
	assertCategorySpread(t, run.Schedule, e.People(), 1)

	for _, slot := range run.Schedule {
		require.NotEmpty(t, slot.Assignee, slot.ID)
		if slot.Weekend && slot.Role == models.RolePrimary {
			assert.Equal(t, 24, slot.DurationHours, slot.ID)
		} else {
			assert.Equal(t, 12, slot.DurationHours, slot.ID)
		}
	}

	require.Len(t, run.Report.People, 5)
	assert.GreaterOrEqual(t, run.Report.Score, 0)
	assert.LessOrEqual(t, run.Report.Score, 100)
}

func TestGenerateDeterministic(t *testing.T) {
	build := func() *models.ScheduleRun {
		e := newTestEngine(t, 4)
		e.SetShiftCounts(1, 1)
		require.NoError(t, e.SetPreferences("p2@example.com", []string{"2025-03-12"}, []string{"2025-03-14"}))
		setRange(t, e, "2025-03-10", "2025-03-16")
		run, err := e.Generate()
		require.NoError(t, err)
		return run
	}

	first := build()
	second := build()
	require.Equal(t, len(first.Schedule), len(second.Schedule))
	for i := range first.Schedule {
		assert.Equal(t, first.Schedule[i].Assignee, second.Schedule[i].Assignee, first.Schedule[i].ID)
	}
}

func TestGeneratePreferencesRespectedWhenSlack(t *testing.T) {
	// With 4 people and one slot pair per day, a single stated unavailability
	// must never be scheduled: there is always a neutral alternative.
	e := newTestEngine(t, 4)
	e.SetShiftCounts(1, 1)
	require.NoError(t, e.SetPreferences("p1@example.com", nil, []string{"2025-03-11"}))
	setRange(t, e, "2025-03-10", "2025-03-13")

	run, err := e.Generate()
	require.NoError(t, err)
	for _, slot := range run.Schedule {
		if slot.Date == "2025-03-11" {
			assert.NotEqual(t, "p1@example.com", slot.Assignee)
		}
	}
}

func TestGenerateAllUnavailableForcesCoverageOverride(t *testing.T) {
	// Every person marks every date unavailable. Slots must still be filled,
	// flagged as coverage overrides once fairness floors are met.
	e := newTestEngine(t, 8)
	e.SetShiftCounts(1, 1)
	dates := []string{
		"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13",
		"2025-03-14", "2025-03-15", "2025-03-16",
	}
	for i := 1; i <= 8; i++ {
		require.NoError(t, e.SetPreferences(fmt.Sprintf("p%d@example.com", i), nil, dates))
	}
	setRange(t, e, "2025-03-10", "2025-03-16")

	run, err := e.Generate()
	require.NoError(t, err)
	require.Len(t, run.Schedule, 14)
	for _, slot := range run.Schedule {
		assert.NotEmpty(t, slot.Assignee, slot.ID)
		assert.True(t, slot.CoverageOverride, slot.ID)
	}
	assertNoDoubleBooking(t, run.Schedule)
}

func TestGenerateFullyUnavailableTwoWeekRangeFlagsEverySlot(t *testing.T) {
	// Two parallel slots per role mean the weekday categories carry a
	// fairness floor above zero, so people are drafted against their stated
	// unavailability before the pool ever needs relaxing. Every slot must
	// still carry the coverage-override flag.
	e := newTestEngine(t, 8)
	e.SetShiftCounts(2, 2)

	start, err := ParseDay("2025-03-02")
	require.NoError(t, err)
	end, err := ParseDay("2025-03-15")
	require.NoError(t, err)
	dates := make([]string, 0, 14)
	for _, day := range DateRange(start, end) {
		dates = append(dates, DayString(day))
	}
	for i := 1; i <= 8; i++ {
		require.NoError(t, e.SetPreferences(fmt.Sprintf("p%d@example.com", i), nil, dates))
	}
	setRange(t, e, "2025-03-02", "2025-03-15")

	run, err := e.Generate()
	require.NoError(t, err)
	require.Len(t, run.Schedule, 14*4)
	for _, slot := range run.Schedule {
		assert.NotEmpty(t, slot.Assignee, slot.ID)
		assert.True(t, slot.CoverageOverride, slot.ID)
	}
	assertNoDoubleBooking(t, run.Schedule)
	if len(run.Report.Warnings) == 0 {
		assertCategorySpread(t, run.Schedule, e.People(), 1)
	}
}

func TestPreferencesReturnsDetachedCopy(t *testing.T) {
	e := newTestEngine(t, 1)
	require.NoError(t, e.SetPreferences("p1@example.com", []string{"2025-03-10"}, []string{"2025-03-11"}))

	got, err := e.Preferences("p1@example.com")
	require.NoError(t, err)
	got.Preferred["2025-03-12"] = true
	delete(got.NotPreferred, "2025-03-11")

	again, err := e.Preferences("p1@example.com")
	require.NoError(t, err)
	assert.True(t, again.Preferred["2025-03-10"])
	assert.False(t, again.Preferred["2025-03-12"])
	assert.True(t, again.NotPreferred["2025-03-11"])
}

func TestGenerateLongRangeStaysBalanced(t *testing.T) {
	e := newTestEngine(t, 6)
	e.SetShiftCounts(2, 1)
	setRange(t, e, "2025-03-01", "2025-03-31")

	run, err := e.Generate()
	require.NoError(t, err)
	require.Len(t, run.Schedule, 31*3)

	assertNoDoubleBooking(t, run.Schedule)
	if len(run.Report.Warnings) == 0 {
		assertCategorySpread(t, run.Schedule, e.People(), 1)
	}
}

func assertNoDoubleBooking(t *testing.T, slots []models.DutySlot) {
	t.Helper()
	seen := make(map[string]string)
	for _, slot := range slots {
		key := slot.Date + "|" + slot.Assignee
		if slot.Assignee == "" {
			continue
		}
		prev, dup := seen[key]
		require.False(t, dup, "double booking on %s: %s and %s", slot.Date, prev, slot.ID)
		seen[key] = slot.ID
	}
}

func assertCategorySpread(t *testing.T, slots []models.DutySlot, people []models.Person, maxSpread int) {
	t.Helper()
	for _, cat := range models.AllCategories {
		counts := make(map[string]int, len(people))
		for _, p := range people {
			counts[p.Email] = 0
		}
		total := 0
		for i := range slots {
			if slots[i].Category() == cat && slots[i].Assignee != "" {
				counts[slots[i].Assignee]++
				total++
			}
		}
		if total == 0 {
			continue
		}
		minCount, maxCount := -1, -1
		for _, c := range counts {
			if minCount == -1 || c < minCount {
				minCount = c
			}
			if c > maxCount {
				maxCount = c
			}
		}
		assert.LessOrEqual(t, maxCount-minCount, maxSpread, "category %s spread", cat)
	}
}
